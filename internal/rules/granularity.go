package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/internal/lexutil"
	"nooa/pkg/lint"
)

// GranularityMetric evaluates granularity_metric (§4.4.13): project-level,
// one violation when the mean LOC over production files exceeds
// target_loc_per_file * warning_threshold_multiplier.
func GranularityMetric(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.GranularityMetric

	var totalLines, productionFiles int
	for _, f := range ctx.Files {
		if isTestFile(f) {
			continue
		}
		text, ok := ctx.Cache.Get(f)
		if !ok {
			continue
		}
		totalLines += lexutil.CountLines(text)
		productionFiles++
	}

	if productionFiles == 0 {
		return nil
	}

	mean := float64(totalLines) / float64(productionFiles)
	threshold := p.TargetLOCPerFile * p.WarningThresholdMultiplier
	if mean <= threshold {
		return nil
	}

	return []lint.Violation{{
		RuleName: rule.Name,
		Severity: rule.Severity,
		Message:  fmt.Sprintf("mean LOC per production file is %.1f, exceeding the threshold of %.1f", mean, threshold),
	}}
}
