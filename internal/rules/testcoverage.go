package rules

import (
	"fmt"
	"path"
	"strings"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// TestCoverage evaluates test_coverage (§4.4.6): a symbol-file has
// coverage iff a sibling `.spec.<ext>`/`.test.<ext>` file exists alongside
// it or under a parallel "tests/" tree, in the enumerated file set.
func TestCoverage(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.TestCoverage
	files := filesOf(symbolsWithRole(ctx.Symbols, p.From))

	known := make(map[string]struct{}, len(ctx.Files))
	for _, f := range ctx.Files {
		known[f] = struct{}{}
	}

	var violations []lint.Violation
	for _, f := range files {
		if isTestFile(f) {
			continue
		}
		if hasTestCoverage(f, known) {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     f,
			Message:  fmt.Sprintf("%s has no corresponding test file", f),
			FromRole: roleOfPath(ctx.Symbols, f),
		})
	}
	return sortedViolations(violations)
}

func hasTestCoverage(filePath string, known map[string]struct{}) bool {
	for _, candidate := range testCandidates(filePath) {
		if _, ok := known[candidate]; ok {
			return true
		}
	}
	return false
}

func testCandidates(filePath string) []string {
	dir := path.Dir(filePath)
	base := path.Base(filePath)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	var candidates []string
	for _, suffix := range []string{".spec", ".test"} {
		candidates = append(candidates,
			path.Join(dir, stem+suffix+ext),
			path.Join("tests", dir, stem+suffix+ext),
		)
	}
	return candidates
}
