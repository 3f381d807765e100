package rules

import (
	"testing"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

func TestDetectUnreferenced_IgnoredEntryPointPasses(t *testing.T) {
	symbols := []lint.Symbol{
		sym("main.ts", "APP", "used.ts"),
		sym("used.ts", "APP"),
		sym("orphan.ts", "APP"),
	}
	rule := grammar.Rule{
		Name: "no-orphans",
		Kind: grammar.KindDetectUnreferenced,
		DetectUnreferenced: &grammar.DetectUnreferencedParams{
			For:            grammar.RoleReference{Roles: []string{"APP"}},
			IgnorePatterns: []string{`^main\.ts$`},
		},
	}

	got := DetectUnreferenced(rule, &Context{Symbols: symbols})
	if len(got) != 1 {
		t.Fatalf("expected exactly one violation, got %d: %+v", len(got), got)
	}
	if got[0].File != "orphan.ts" {
		t.Fatalf("expected orphan.ts to be reported, got %q", got[0].File)
	}
}

func TestDetectUnreferenced_ReferencedFilePasses(t *testing.T) {
	symbols := []lint.Symbol{
		sym("main.ts", "APP", "used.ts"),
		sym("used.ts", "APP"),
	}
	rule := grammar.Rule{
		Name: "no-orphans",
		Kind: grammar.KindDetectUnreferenced,
		DetectUnreferenced: &grammar.DetectUnreferencedParams{
			For: grammar.RoleReference{Roles: []string{"APP"}},
		},
	}

	got := DetectUnreferenced(rule, &Context{Symbols: symbols})
	for _, v := range got {
		if v.File == "used.ts" {
			t.Fatalf("did not expect used.ts to be reported as unreferenced: %+v", got)
		}
	}
}
