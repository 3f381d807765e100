package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// RequiredStructure evaluates required_structure (§4.4.11): one violation
// per required directory that does not exist under the project root.
func RequiredStructure(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.RequiredStructure

	var violations []lint.Violation
	for _, dir := range p.RequiredDirectories {
		if ctx.Dirs.DirExists(dir) {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     dir,
			Message:  fmt.Sprintf("required directory %q does not exist", dir),
		})
	}
	return sortedViolations(violations)
}
