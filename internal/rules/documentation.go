package rules

import (
	"fmt"
	"regexp"
	"strings"

	"nooa/internal/grammar"
	"nooa/internal/lexutil"
	"nooa/pkg/lint"
)

var topLevelDeclPattern = regexp.MustCompile(`(?m)^(?:export\s+)?(?:default\s+)?(?:abstract\s+)?(?:class|interface|function|type|const|let|var)\s`)

// DocumentationRequired evaluates documentation_required (§4.4.8): a file
// meeting min_lines must, when requires_jsdoc is set, carry a block-comment
// doc header ("/**") before its first top-level declaration.
func DocumentationRequired(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.DocumentationRequired
	files := filesOf(symbolsWithRole(ctx.Symbols, p.For))

	var violations []lint.Violation
	for _, f := range files {
		text, ok := ctx.Cache.Get(f)
		if !ok {
			continue
		}
		if lexutil.CountLines(text) < p.MinLines {
			continue
		}
		if !p.RequiresJSDoc {
			continue
		}
		if hasLeadingDocHeader(text) {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     f,
			Message:  fmt.Sprintf("%s is missing a doc comment before its first declaration", f),
			FromRole: roleOfPath(ctx.Symbols, f),
		})
	}
	return sortedViolations(violations)
}

func hasLeadingDocHeader(text string) bool {
	declLoc := topLevelDeclPattern.FindStringIndex(text)
	if declLoc == nil {
		return false
	}
	leading := text[:declLoc[0]]
	return strings.Contains(leading, "/**")
}
