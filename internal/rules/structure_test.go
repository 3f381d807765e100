package rules

import (
	"testing"

	"nooa/internal/grammar"
)

func TestRequiredStructure_MissingDirectoryReported(t *testing.T) {
	rule := grammar.Rule{
		Name: "layout",
		Kind: grammar.KindRequiredStructure,
		RequiredStructure: &grammar.RequiredStructureParams{
			RequiredDirectories: []string{"src/domain", "src/infra"},
		},
	}

	got := RequiredStructure(rule, &Context{Dirs: fakeDirChecker{"src/domain": true}})
	if len(got) != 1 {
		t.Fatalf("expected exactly one violation for the missing src/infra directory, got %d: %+v", len(got), got)
	}
	if got[0].File != "src/infra" {
		t.Fatalf("expected the violation to name src/infra, got %q", got[0].File)
	}
}

func TestRequiredStructure_AllPresentPasses(t *testing.T) {
	rule := grammar.Rule{
		Name: "layout",
		Kind: grammar.KindRequiredStructure,
		RequiredStructure: &grammar.RequiredStructureParams{
			RequiredDirectories: []string{"src/domain"},
		},
	}

	got := RequiredStructure(rule, &Context{Dirs: fakeDirChecker{"src/domain": true}})
	if len(got) != 0 {
		t.Fatalf("expected no violations when all required directories exist, got %+v", got)
	}
}
