package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// ForbiddenPatterns evaluates forbidden_patterns (§4.4.9): one violation
// per (file, offending regex) whose pattern matches cached content.
func ForbiddenPatterns(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.ForbiddenPatterns
	files := filesOf(symbolsWithRole(ctx.Symbols, p.From))

	var violations []lint.Violation
	for _, f := range files {
		text, ok := ctx.Cache.Get(f)
		if !ok {
			continue
		}
		for i, re := range p.ContainsForbidden {
			if !re.MatchString(text) {
				continue
			}
			violations = append(violations, lint.Violation{
				RuleName: rule.Name,
				Severity: rule.Severity,
				File:     f,
				Message:  fmt.Sprintf("%s matches forbidden pattern %q", f, p.ContainsForbiddenSource[i]),
				FromRole: roleOfPath(ctx.Symbols, f),
			})
		}
	}
	return sortedViolations(violations)
}
