package server

import (
	"context"
	"fmt"
	"strings"

	"ngmcp/internal/content"
	"ngmcp/internal/registry"
	"ngmcp/internal/rules"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolHandler matches mcp-go's tool handler signature so registry entries
// wire straight into the transport.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolRegistry holds the tool specs and handlers in listing order.
type ToolRegistry = registry.Registry[mcp.Tool, ToolHandler]

type toolDef struct {
	tool    mcp.Tool
	handler ToolHandler
}

// newToolRegistry registers the three tools in their fixed listing order.
func newToolRegistry(store *content.Store, engine *rules.Engine) (*ToolRegistry, error) {
	reg := registry.New[mcp.Tool, ToolHandler]()
	defs := []toolDef{
		guidelinesTool(store),
		exampleTool(store),
		validateTool(store, engine),
	}
	for _, def := range defs {
		if err := reg.Register(def.tool.Name, def.tool, def.handler); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// requireString fetches a required string argument from a tool call.
func requireString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	raw, ok := args[key]
	if !ok {
		return "", missingArgument(key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", &InvalidArgumentError{Reason: fmt.Sprintf("Invalid argument: %s must be a string", key)}
	}
	return value, nil
}

// guidelinesTool serves the guideline document, optionally narrowed to one
// section. Unknown section values fall back to the full document; only a
// non-string value is rejected.
func guidelinesTool(store *content.Store) toolDef {
	tool := mcp.NewTool("get_angular_guidelines",
		mcp.WithDescription("Get Angular development guidelines and best practices"),
		mcp.WithString("section",
			mcp.Description("Specific section of the guidelines to retrieve"),
			mcp.Enum(content.SectionNames()...),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		section := "all"
		if raw, ok := request.GetArguments()["section"]; ok {
			value, ok := raw.(string)
			if !ok {
				return nil, &InvalidArgumentError{Reason: "Invalid argument: section must be a string"}
			}
			section = value
		}

		return mcp.NewToolResultText(content.ExtractSection(store.Guidelines(), section)), nil
	}

	return toolDef{tool: tool, handler: handler}
}

// exampleTool serves entries from the example catalog. "all" concatenates
// every entry under its own heading, component first.
func exampleTool(store *content.Store) toolDef {
	tool := mcp.NewTool("get_code_example",
		mcp.WithDescription("Get example code for common Angular patterns"),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Type of example to retrieve"),
			mcp.Enum(content.ExampleComponent, content.ExampleService, content.ExampleAll),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := requireString(request, "type")
		if err != nil {
			return nil, err
		}

		if kind == content.ExampleAll {
			var b strings.Builder
			for i, k := range store.ExampleKinds() {
				doc, _ := store.Example(k)
				if i > 0 {
					b.WriteString("\n\n")
				}
				b.WriteString(exampleHeading(k))
				b.WriteString("\n\n")
				b.WriteString(doc.Body)
			}
			return mcp.NewToolResultText(b.String()), nil
		}

		doc, ok := store.Example(kind)
		if !ok {
			return nil, &InvalidArgumentError{Reason: fmt.Sprintf("Unknown example type: %s", kind)}
		}
		return mcp.NewToolResultText(exampleHeading(kind) + "\n\n" + doc.Body), nil
	}

	return toolDef{tool: tool, handler: handler}
}

// exampleHeading builds the synthetic heading for a catalog entry, e.g.
// "## Component Example".
func exampleHeading(kind string) string {
	return "## " + strings.ToUpper(kind[:1]) + kind[1:] + " Example"
}

// validateTool runs the rule engine over a code snippet and reports the
// findings together with the full guideline document.
func validateTool(store *content.Store, engine *rules.Engine) toolDef {
	tool := mcp.NewTool("validate_angular_code",
		mcp.WithDescription("Validate Angular code against the guidelines"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The Angular code to validate"),
		),
		mcp.WithString("type",
			mcp.Description("The kind of code being validated"),
			mcp.Enum(rules.Categories()...),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, err := requireString(request, "code")
		if err != nil {
			return nil, err
		}

		category := rules.CategoryGeneral
		if raw, ok := request.GetArguments()["type"]; ok {
			value, ok := raw.(string)
			if !ok {
				return nil, &InvalidArgumentError{Reason: "Invalid argument: type must be a string"}
			}
			if !rules.ValidCategory(value) {
				return nil, &InvalidArgumentError{Reason: fmt.Sprintf("Invalid type: %s (expected component, service or general)", value)}
			}
			category = rules.Category(value)
		}

		findings := engine.Validate(code, category)
		return mcp.NewToolResultText(FormatValidation(findings, store.Guidelines())), nil
	}

	return toolDef{tool: tool, handler: handler}
}

// FormatValidation renders findings as a bulleted list, or a success banner
// when there are none, always followed by the full guideline document.
func FormatValidation(findings []rules.Finding, guidelines string) string {
	var b strings.Builder

	if len(findings) == 0 {
		b.WriteString("No issues found. The code follows the Angular guidelines.")
	} else {
		fmt.Fprintf(&b, "Validation found %d issue(s):\n\n", len(findings))
		for _, f := range findings {
			fmt.Fprintf(&b, "- [%s] %s\n", f.Severity, f.Message)
		}
	}

	b.WriteString("\n\nAngular Guidelines:\n\n")
	b.WriteString(guidelines)
	return b.String()
}
