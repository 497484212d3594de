package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modernComponent = `
import { ChangeDetectionStrategy, Component, computed, signal } from '@angular/core';

@Component({
  selector: 'app-counter',
  changeDetection: ChangeDetectionStrategy.OnPush,
  template: '<span>{{ doubled() }}</span>',
})
export class CounterComponent {
  protected readonly count = signal(0);
  protected readonly doubled = computed(() => this.count() * 2);
}
`

const modernService = `
import { Injectable, inject } from '@angular/core';
import { HttpClient } from '@angular/common/http';

@Injectable({
  providedIn: 'root',
})
export class TodoService {
  private readonly http = inject(HttpClient);
}
`

func TestValidateComponentWithAny(t *testing.T) {
	engine := NewEngine()

	findings := engine.Validate("let x: any = 1", CategoryComponent)

	require.Len(t, findings, 3)
	assert.Equal(t, SeverityBlocking, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "'any'")
	assert.Equal(t, SeverityAdvisory, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "OnPush")
	assert.Equal(t, SeveritySuggestion, findings[2].Severity)
	assert.Contains(t, findings[2].Message, "signal")
}

func TestValidateModernComponentIsClean(t *testing.T) {
	engine := NewEngine()

	findings := engine.Validate(modernComponent, CategoryComponent)

	assert.Empty(t, findings)
}

func TestValidateModernServiceIsClean(t *testing.T) {
	engine := NewEngine()

	findings := engine.Validate(modernService, CategoryService)

	assert.Empty(t, findings)
}

func TestValidateBlockingRules(t *testing.T) {
	engine := NewEngine()

	cases := []struct {
		name    string
		code    string
		message string
	}{
		{"ngIf", `<div *ngIf="visible"></div>`, "native control flow"},
		{"ngFor", `<li *ngFor="let item of items"></li>`, "native control flow"},
		{"ngSwitch", `<div [ngSwitch]="state"><p *ngSwitchCase="'a'"></p></div>`, "native control flow"},
		{"ngClass", `<div [ngClass]="{active: isActive}"></div>`, "ngClass"},
		{"ngStyle", `<div [ngStyle]="{color: color}"></div>`, "ngStyle"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := engine.Validate(tc.code, CategoryGeneral)

			require.NotEmpty(t, findings)
			assert.Equal(t, SeverityBlocking, findings[0].Severity)
			assert.Contains(t, findings[0].Message, tc.message)
		})
	}
}

func TestValidateDecoratorRule(t *testing.T) {
	engine := NewEngine()

	findings := engine.Validate("@Input() value: string;", CategoryGeneral)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityAdvisory, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "input()")
}

func TestValidateServiceAbsenceRules(t *testing.T) {
	engine := NewEngine()

	code := `
@Injectable()
export class LegacyService {
  constructor(private http: HttpClient) {}
}
`
	findings := engine.Validate(code, CategoryService)

	require.Len(t, findings, 2)
	assert.Equal(t, SeverityAdvisory, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "inject()")
	assert.Equal(t, SeveritySuggestion, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "providedIn")
}

func TestValidateGeneralSkipsCategoryRules(t *testing.T) {
	engine := NewEngine()

	// General code with no matches should be clean: the component and
	// service absence rules must not fire outside their category.
	findings := engine.Validate("const x = 1;", CategoryGeneral)

	assert.Empty(t, findings)
}

func TestValidateNoShortCircuit(t *testing.T) {
	engine := NewEngine()

	code := `let x: any; <div *ngIf="x" [ngClass]="c" [ngStyle]="s"></div>`
	findings := engine.Validate(code, CategoryGeneral)

	require.Len(t, findings, 4)
	for _, f := range findings {
		assert.Equal(t, SeverityBlocking, f.Severity)
	}
}

func TestValidateTableOrder(t *testing.T) {
	engine := NewEngine()

	// A snippet firing rules across the table must report them in table
	// order, independent of match position in the input.
	code := `[ngClass]="c" plus let x: any and @Input() too`
	findings := engine.Validate(code, CategoryComponent)

	require.Len(t, findings, 5)
	assert.Contains(t, findings[0].Message, "'any'")
	assert.Contains(t, findings[1].Message, "ngClass")
	assert.Contains(t, findings[2].Message, "input()")
	assert.Contains(t, findings[3].Message, "OnPush")
	assert.Contains(t, findings[4].Message, "signal")
}

func TestDefaultRulesShape(t *testing.T) {
	table := DefaultRules()

	require.Len(t, table, 9)

	wantNames := []string{
		"no-any", "native-control-flow", "no-ngclass", "no-ngstyle",
		"signal-io", "onpush", "signals", "inject-fn", "provided-in-root",
	}
	for i, rule := range table {
		assert.Equal(t, wantNames[i], rule.Name)
		assert.NotEmpty(t, rule.Message)
		assert.NotNil(t, rule.Match)
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("component"))
	assert.True(t, ValidCategory("service"))
	assert.True(t, ValidCategory("general"))
	assert.False(t, ValidCategory("module"))
	assert.False(t, ValidCategory(""))
}

func TestNewEngineWithRules(t *testing.T) {
	engine := NewEngineWithRules([]Rule{
		{
			Name:     "custom",
			Severity: SeverityBlocking,
			Message:  "no TODO markers",
			Match: func(code string) bool {
				return contains(code, "TODO")
			},
		},
	})

	findings := engine.Validate("// TODO: later", CategoryGeneral)
	require.Len(t, findings, 1)
	assert.Equal(t, "no TODO markers", findings[0].Message)
}
