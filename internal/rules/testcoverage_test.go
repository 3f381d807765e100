package rules

import (
	"testing"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

func TestTestCoverage_SiblingSpecFileSatisfies(t *testing.T) {
	symbols := []lint.Symbol{
		sym("src/widget.ts", "DOMAIN"),
		sym("src/widget.spec.ts", "DOMAIN"),
	}
	rule := grammar.Rule{
		Name:         "needs-tests",
		Kind:         grammar.KindTestCoverage,
		TestCoverage: &grammar.TestCoverageParams{From: grammar.RoleReference{Roles: []string{"DOMAIN"}}},
	}

	got := TestCoverage(rule, &Context{Symbols: symbols, Files: []string{"src/widget.ts", "src/widget.spec.ts"}})
	if len(got) != 0 {
		t.Fatalf("expected sibling .spec.ts to satisfy coverage, got %+v", got)
	}
}

func TestTestCoverage_MissingFileReported(t *testing.T) {
	symbols := []lint.Symbol{sym("src/widget.ts", "DOMAIN")}
	rule := grammar.Rule{
		Name:         "needs-tests",
		Kind:         grammar.KindTestCoverage,
		TestCoverage: &grammar.TestCoverageParams{From: grammar.RoleReference{Roles: []string{"DOMAIN"}}},
	}

	got := TestCoverage(rule, &Context{Symbols: symbols, Files: []string{"src/widget.ts"}})
	if len(got) != 1 {
		t.Fatalf("expected exactly one violation for an untested file, got %d", len(got))
	}
}

func TestTestCoverage_ParallelTestsDirSatisfies(t *testing.T) {
	symbols := []lint.Symbol{sym("src/widget.ts", "DOMAIN")}
	rule := grammar.Rule{
		Name:         "needs-tests",
		Kind:         grammar.KindTestCoverage,
		TestCoverage: &grammar.TestCoverageParams{From: grammar.RoleReference{Roles: []string{"DOMAIN"}}},
	}

	files := []string{"src/widget.ts", "tests/src/widget.test.ts"}
	got := TestCoverage(rule, &Context{Symbols: symbols, Files: files})
	if len(got) != 0 {
		t.Fatalf("expected a parallel tests/ tree file to satisfy coverage, got %+v", got)
	}
}
