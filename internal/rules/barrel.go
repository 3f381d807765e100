package rules

import (
	"fmt"
	"sort"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// BarrelPurity evaluates barrel_purity (§4.4.10): project files matching
// for.file_pattern must not contain any of contains_forbidden.
func BarrelPurity(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.BarrelPurity

	files := append([]string(nil), ctx.Files...)
	sort.Strings(files)

	var violations []lint.Violation
	for _, f := range files {
		if !p.FilePattern.MatchString(f) {
			continue
		}
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
				Message:  fmt.Sprintf("barrel file %s contains forbidden pattern %q", f, p.ContainsForbiddenSource[i]),
			})
		}
	}
	return sortedViolations(violations)
}
