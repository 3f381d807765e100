package rules

import (
	"strings"
	"testing"

	"nooa/internal/content"
	"nooa/internal/grammar"
)

func TestGranularityMetric_WithinThresholdPasses(t *testing.T) {
	files := []string{"a.ts", "b.ts"}
	cache := content.Fill(fakeReader{
		"a.ts": strings.Repeat("x\n", 10),
		"b.ts": strings.Repeat("x\n", 10),
	}, files)

	rule := grammar.Rule{
		Name: "granularity",
		Kind: grammar.KindGranularityMetric,
		GranularityMetric: &grammar.GranularityMetricParams{
			TargetLOCPerFile:           100,
			WarningThresholdMultiplier: 1.5,
		},
	}

	got := GranularityMetric(rule, &Context{Files: files, Cache: cache})
	if len(got) != 0 {
		t.Fatalf("expected mean LOC well under threshold to pass, got %+v", got)
	}
}

func TestGranularityMetric_OverThresholdReported(t *testing.T) {
	files := []string{"a.ts", "b.ts"}
	cache := content.Fill(fakeReader{
		"a.ts": strings.Repeat("x\n", 200),
		"b.ts": strings.Repeat("x\n", 200),
	}, files)

	rule := grammar.Rule{
		Name: "granularity",
		Kind: grammar.KindGranularityMetric,
		GranularityMetric: &grammar.GranularityMetricParams{
			TargetLOCPerFile:           100,
			WarningThresholdMultiplier: 1.5,
		},
	}

	got := GranularityMetric(rule, &Context{Files: files, Cache: cache})
	if len(got) != 1 {
		t.Fatalf("expected exactly one project-level violation, got %d: %+v", len(got), got)
	}
}

func TestGranularityMetric_TestFilesExcludedFromMean(t *testing.T) {
	files := []string{"a.ts", "a.spec.ts"}
	cache := content.Fill(fakeReader{
		"a.ts":      strings.Repeat("x\n", 10),
		"a.spec.ts": strings.Repeat("x\n", 500),
	}, files)

	rule := grammar.Rule{
		Name: "granularity",
		Kind: grammar.KindGranularityMetric,
		GranularityMetric: &grammar.GranularityMetricParams{
			TargetLOCPerFile:           100,
			WarningThresholdMultiplier: 1.5,
		},
	}

	got := GranularityMetric(rule, &Context{Files: files, Cache: cache})
	if len(got) != 0 {
		t.Fatalf("expected the bloated spec file to be excluded from the mean, got %+v", got)
	}
}
