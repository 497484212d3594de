// Package rules implements the validation rule engine: a fixed, ordered
// table of independent substring checks run over a code snippet. Rules are
// deliberately plain text matching, not an AST; the goal is fast,
// deterministic guidance, not static analysis.
package rules

import "strings"

// Severity classifies a finding.
type Severity string

const (
	SeverityBlocking   Severity = "blocking"
	SeverityAdvisory   Severity = "advisory"
	SeveritySuggestion Severity = "suggestion"
)

// Category scopes a rule to a kind of code. The zero value applies the rule
// unconditionally.
type Category string

const (
	CategoryComponent Category = "component"
	CategoryService   Category = "service"
	CategoryGeneral   Category = "general"
)

// Categories returns the accepted category values in listing order.
func Categories() []string {
	return []string{string(CategoryComponent), string(CategoryService), string(CategoryGeneral)}
}

// ValidCategory reports whether name is one of the accepted categories.
func ValidCategory(name string) bool {
	switch Category(name) {
	case CategoryComponent, CategoryService, CategoryGeneral:
		return true
	}
	return false
}

// Finding is one validation result produced by a single rule match.
type Finding struct {
	Severity Severity
	Message  string
}

// Rule is one entry of the rule table. Match reports whether the rule
// fires; for absence rules it returns true when the expected pattern is
// missing.
type Rule struct {
	Name     string
	Severity Severity
	Message  string
	Category Category // empty = applies to every category
	Match    func(code string) bool
}

// contains is a case-sensitive substring check over any of the given
// patterns.
func contains(code string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(code, p) {
			return true
		}
	}
	return false
}

// DefaultRules returns the fixed rule table. Order is significant: findings
// are always reported in table order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "no-any",
			Severity: SeverityBlocking,
			Message:  "Avoid the 'any' type; use specific types or 'unknown' instead",
			Match: func(code string) bool {
				return contains(code, ": any")
			},
		},
		{
			Name:     "native-control-flow",
			Severity: SeverityBlocking,
			Message:  "Use native control flow (@if, @for, @switch) instead of *ngIf, *ngFor and *ngSwitch",
			Match: func(code string) bool {
				return contains(code, "*ngIf", "*ngFor", "*ngSwitch")
			},
		},
		{
			Name:     "no-ngclass",
			Severity: SeverityBlocking,
			Message:  "Use class bindings instead of ngClass",
			Match: func(code string) bool {
				return contains(code, "ngClass")
			},
		},
		{
			Name:     "no-ngstyle",
			Severity: SeverityBlocking,
			Message:  "Use style bindings instead of ngStyle",
			Match: func(code string) bool {
				return contains(code, "ngStyle")
			},
		},
		{
			Name:     "signal-io",
			Severity: SeverityAdvisory,
			Message:  "Use input() and output() functions instead of the @Input() and @Output() decorators",
			Match: func(code string) bool {
				return contains(code, "@Input(", "@Output(")
			},
		},
		{
			Name:     "onpush",
			Severity: SeverityAdvisory,
			Message:  "Set changeDetection: ChangeDetectionStrategy.OnPush for better performance",
			Category: CategoryComponent,
			Match: func(code string) bool {
				return !contains(code, "ChangeDetectionStrategy.OnPush")
			},
		},
		{
			Name:     "signals",
			Severity: SeveritySuggestion,
			Message:  "Consider using signal() and computed() for component state",
			Category: CategoryComponent,
			Match: func(code string) bool {
				return !contains(code, "signal(") && !contains(code, "computed(")
			},
		},
		{
			Name:     "inject-fn",
			Severity: SeverityAdvisory,
			Message:  "Use the inject() function instead of constructor injection",
			Category: CategoryService,
			Match: func(code string) bool {
				return !contains(code, "inject(")
			},
		},
		{
			Name:     "provided-in-root",
			Severity: SeveritySuggestion,
			Message:  "Consider providedIn: 'root' for singleton services",
			Category: CategoryService,
			Match: func(code string) bool {
				return !contains(code, "providedIn: 'root'")
			},
		},
	}
}

// Engine evaluates the rule table against code snippets. It is stateless
// after construction and safe for concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine over the default rule table.
func NewEngine() *Engine {
	return &Engine{rules: DefaultRules()}
}

// NewEngineWithRules creates an engine over a custom rule table, mainly for
// testing individual rules in isolation.
func NewEngineWithRules(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Validate runs every applicable rule over code and returns the findings in
// table order. Every rule is evaluated; there is no short-circuit. An empty
// result means the code passed.
func (e *Engine) Validate(code string, category Category) []Finding {
	findings := make([]Finding, 0, len(e.rules))
	for _, rule := range e.rules {
		if rule.Category != "" && rule.Category != category {
			continue
		}
		if rule.Match(code) {
			findings = append(findings, Finding{
				Severity: rule.Severity,
				Message:  rule.Message,
			})
		}
	}
	return findings
}
