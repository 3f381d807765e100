package rules

import (
	"strings"
	"testing"

	"nooa/internal/content"
	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

func TestDocumentationRequired_MissingDocHeaderReported(t *testing.T) {
	text := strings.Repeat("const x = 1\n", 20) + "export class Widget {}\n"
	symbols := []lint.Symbol{sym("src/widget.ts", "DOMAIN")}
	cache := content.Fill(fakeReader{"src/widget.ts": text}, []string{"src/widget.ts"})

	rule := grammar.Rule{
		Name: "needs-docs",
		Kind: grammar.KindDocumentationRequired,
		DocumentationRequired: &grammar.DocumentationRequiredParams{
			For:           grammar.RoleReference{Roles: []string{"DOMAIN"}},
			MinLines:      5,
			RequiresJSDoc: true,
		},
	}

	got := DocumentationRequired(rule, &Context{Symbols: symbols, Cache: cache})
	if len(got) != 1 {
		t.Fatalf("expected exactly one violation for a missing doc header, got %d", len(got))
	}
}

func TestDocumentationRequired_LeadingDocHeaderPasses(t *testing.T) {
	text := "/**\n * Widget docs.\n */\n" + strings.Repeat("const x = 1\n", 20) + "export class Widget {}\n"
	symbols := []lint.Symbol{sym("src/widget.ts", "DOMAIN")}
	cache := content.Fill(fakeReader{"src/widget.ts": text}, []string{"src/widget.ts"})

	rule := grammar.Rule{
		Name: "needs-docs",
		Kind: grammar.KindDocumentationRequired,
		DocumentationRequired: &grammar.DocumentationRequiredParams{
			For:           grammar.RoleReference{Roles: []string{"DOMAIN"}},
			MinLines:      5,
			RequiresJSDoc: true,
		},
	}

	got := DocumentationRequired(rule, &Context{Symbols: symbols, Cache: cache})
	if len(got) != 0 {
		t.Fatalf("expected a leading doc header to satisfy the rule, got %+v", got)
	}
}

func TestDocumentationRequired_BelowMinLinesSkipped(t *testing.T) {
	text := "export class Widget {}\n"
	symbols := []lint.Symbol{sym("src/widget.ts", "DOMAIN")}
	cache := content.Fill(fakeReader{"src/widget.ts": text}, []string{"src/widget.ts"})

	rule := grammar.Rule{
		Name: "needs-docs",
		Kind: grammar.KindDocumentationRequired,
		DocumentationRequired: &grammar.DocumentationRequiredParams{
			For:           grammar.RoleReference{Roles: []string{"DOMAIN"}},
			MinLines:      50,
			RequiresJSDoc: true,
		},
	}

	got := DocumentationRequired(rule, &Context{Symbols: symbols, Cache: cache})
	if len(got) != 0 {
		t.Fatalf("expected a file below min_lines to be exempt, got %+v", got)
	}
}
