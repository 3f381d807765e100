package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// MinimumTestRatio evaluates minimum_test_ratio (§4.4.12): project-level,
// one violation when test_files/production_files is below global.test_ratio.
func MinimumTestRatio(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.MinimumTestRatio

	var testFiles, productionFiles int
	for _, f := range ctx.Files {
		if isTestFile(f) {
			testFiles++
		} else {
			productionFiles++
		}
	}

	if productionFiles == 0 {
		return nil
	}

	ratio := float64(testFiles) / float64(productionFiles)
	if ratio >= p.TestRatio {
		return nil
	}

	return []lint.Violation{{
		RuleName: rule.Name,
		Severity: rule.Severity,
		Message:  fmt.Sprintf("test ratio %.3f is below the required minimum %.3f (%d test / %d production files)", ratio, p.TestRatio, testFiles, productionFiles),
	}}
}
