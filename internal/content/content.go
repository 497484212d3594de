// Package content holds the static guidance served by the MCP server: the
// Angular guideline document and the example catalog. Everything is loaded
// once at startup from embedded markdown assets and is read-only afterwards.
//
// Each asset carries YAML frontmatter with a required description field,
// the same convention rule files use elsewhere in the ecosystem. The
// description is surfaced in tool metadata; the body is served verbatim.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

//go:embed assets/*.md
var assets embed.FS

// Example catalog keys. The catalog is closed: these are the only valid
// keys, plus the synthetic "all".
const (
	ExampleComponent = "component"
	ExampleService   = "service"
	ExampleAll       = "all"
)

// docFrontmatter is the YAML frontmatter expected at the top of each asset.
type docFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Document is a parsed content asset: frontmatter metadata plus the body
// with the frontmatter stripped.
type Document struct {
	Name        string
	Description string
	Body        string
}

// Store is the immutable content store. Construct it once at startup and
// share it freely; it is never mutated, so concurrent reads are safe.
type Store struct {
	guidelines Document
	examples   map[string]Document
}

// NewStore loads the guideline document and example catalog from the
// embedded assets.
func NewStore() (*Store, error) {
	return newStore("")
}

// NewStoreFromFile is like NewStore but reads the guideline document from a
// file on disk, for users who maintain their own guidelines. The example
// catalog always comes from the embedded assets.
func NewStoreFromFile(guidelinesPath string) (*Store, error) {
	if guidelinesPath == "" {
		return nil, fmt.Errorf("guidelines path is empty")
	}
	return newStore(guidelinesPath)
}

func newStore(guidelinesPath string) (*Store, error) {
	var guidelines Document
	var err error

	if guidelinesPath != "" {
		guidelines, err = loadFile(guidelinesPath)
	} else {
		guidelines, err = loadAsset("guidelines")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load guidelines: %w", err)
	}

	examples := make(map[string]Document, 2)
	for _, kind := range []string{ExampleComponent, ExampleService} {
		doc, err := loadAsset(kind)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s example: %w", kind, err)
		}
		examples[kind] = doc
	}

	return &Store{
		guidelines: guidelines,
		examples:   examples,
	}, nil
}

// loadAsset reads an embedded asset and parses its frontmatter. Assets
// without a description are a packaging mistake, so that is an error.
func loadAsset(name string) (Document, error) {
	raw, err := assets.ReadFile("assets/" + name + ".md")
	if err != nil {
		return Document{}, fmt.Errorf("failed to read asset %q: %w", name, err)
	}

	var matter docFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse frontmatter in asset %q: %w", name, err)
	}
	if matter.Description == "" {
		return Document{}, fmt.Errorf("asset %q is missing the required 'description' frontmatter field", name)
	}

	docName := matter.Name
	if docName == "" {
		docName = name
	}

	return Document{
		Name:        docName,
		Description: matter.Description,
		Body:        strings.TrimSpace(string(body)),
	}, nil
}

// loadFile reads a user-supplied guideline document. Frontmatter is
// optional here: a plain markdown file is served as-is.
func loadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read guidelines file: %w", err)
	}

	var matter docFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		// Not frontmatter-formatted; use the file verbatim.
		body = raw
	}

	doc := Document{
		Name:        matter.Name,
		Description: matter.Description,
		Body:        strings.TrimSpace(string(body)),
	}
	if doc.Name == "" {
		doc.Name = path
	}
	return doc, nil
}

// Guidelines returns the full guideline document body.
func (s *Store) Guidelines() string {
	return s.guidelines.Body
}

// GuidelinesDoc returns the guideline document with its metadata.
func (s *Store) GuidelinesDoc() Document {
	return s.guidelines
}

// Example looks up one example catalog entry by kind.
func (s *Store) Example(kind string) (Document, bool) {
	doc, ok := s.examples[kind]
	return doc, ok
}

// ExampleKinds returns the catalog keys in their fixed listing order.
func (s *Store) ExampleKinds() []string {
	return []string{ExampleComponent, ExampleService}
}
