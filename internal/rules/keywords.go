package rules

import (
	"fmt"
	"strings"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// ForbiddenKeywords evaluates forbidden_keywords (§4.4.9): a case-sensitive
// literal substring scan of cached content, one violation per (file,
// offending term).
func ForbiddenKeywords(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.ForbiddenKeywords
	files := filesOf(symbolsWithRole(ctx.Symbols, p.From))

	var violations []lint.Violation
	for _, f := range files {
		text, ok := ctx.Cache.Get(f)
		if !ok {
			continue
		}
		for _, keyword := range p.ContainsForbidden {
			if !strings.Contains(text, keyword) {
				continue
			}
			violations = append(violations, lint.Violation{
				RuleName: rule.Name,
				Severity: rule.Severity,
				File:     f,
				Message:  fmt.Sprintf("%s contains forbidden keyword %q", f, keyword),
				FromRole: roleOfPath(ctx.Symbols, f),
			})
		}
	}
	return sortedViolations(violations)
}
