package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/internal/lexutil"
	"nooa/pkg/lint"
)

// FileSize evaluates file_size (§4.4.5): a file whose role matches and
// whose line count exceeds max_lines is reported.
func FileSize(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.FileSize
	files := filesOf(symbolsWithRole(ctx.Symbols, p.For))

	var violations []lint.Violation
	for _, f := range files {
		text, ok := ctx.Cache.Get(f)
		if !ok {
			continue
		}
		lines := lexutil.CountLines(text)
		if lines <= p.MaxLines {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     f,
			Message:  fmt.Sprintf("%s has %d lines, exceeding the limit of %d", f, lines, p.MaxLines),
			FromRole: roleOfPath(ctx.Symbols, f),
		})
	}
	return sortedViolations(violations)
}
