package rules

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// DetectUnreferenced evaluates detect_unreferenced (§4.4.4): a file
// matching for.role is reported when no other file's dependency set
// contains it and it matches none of ignore_patterns.
func DetectUnreferenced(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.DetectUnreferenced

	referenced := make(map[string]struct{})
	for _, s := range ctx.Symbols {
		for dep := range s.Dependencies {
			referenced[dep] = struct{}{}
		}
	}

	files := filesOf(symbolsWithRole(ctx.Symbols, p.For))

	var violations []lint.Violation
	for _, f := range files {
		if _, ok := referenced[f]; ok {
			continue
		}
		if matchesAnyIgnorePattern(f, p.IgnorePatterns) {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     f,
			Message:  fmt.Sprintf("%s is never referenced by any other file", f),
			FromRole: roleOfPath(ctx.Symbols, f),
		})
	}
	return sortedViolations(violations)
}

// matchesAnyIgnorePattern tries each pattern as a doublestar glob first
// (the common case for path-shaped ignores); if it's not a valid glob
// match for this path, it's tried as a plain regex, since §3 documents
// ignore_patterns as "globs/regex".
func matchesAnyIgnorePattern(filePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, filePath); err == nil && ok {
			return true
		}
		if re, err := regexpCompileCached(pattern); err == nil && re.MatchString(filePath) {
			return true
		}
	}
	return false
}
