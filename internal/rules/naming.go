package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// NamingPattern evaluates naming_pattern (§4.4.2): every file whose role
// matches for.role must have a path matching pattern.
func NamingPattern(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.NamingPattern
	files := filesOf(symbolsWithRole(ctx.Symbols, p.For))

	var violations []lint.Violation
	for _, f := range files {
		if p.Pattern.MatchString(f) {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     f,
			Message:  fmt.Sprintf("%s does not match required naming pattern %q", f, p.PatternSource),
			FromRole: roleOfPath(ctx.Symbols, f),
		})
	}
	return sortedViolations(violations)
}
