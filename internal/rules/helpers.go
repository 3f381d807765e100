package rules

import (
	"sort"
	"strings"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// symbolsWithRole returns the symbols whose Role satisfies ref, in a
// stable (input) order.
func symbolsWithRole(symbols []lint.Symbol, ref grammar.RoleReference) []lint.Symbol {
	var out []lint.Symbol
	for _, s := range symbols {
		if ref.Matches(s.Role) {
			out = append(out, s)
		}
	}
	return out
}

// filesOf collapses a symbol slice down to its distinct, sorted Path set,
// matching §4.4.3's "collapse multiple symbols by path".
func filesOf(symbols []lint.Symbol) []string {
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		seen[s.Path] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// roleOfPath returns the role assigned to path, by inspecting any one of
// its symbols (role assignment is per-file, so every symbol sharing a
// path carries the same role — §8 "two symbols sharing a path receive the
// same role").
func roleOfPath(symbols []lint.Symbol, path string) string {
	for _, s := range symbols {
		if s.Path == path {
			return s.Role
		}
	}
	return lint.UnknownRole
}

// dependenciesOfPath unions the Dependencies sets of every symbol sharing
// path.
func dependenciesOfPath(symbols []lint.Symbol, path string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range symbols {
		if s.Path != path {
			continue
		}
		for d := range s.Dependencies {
			out[d] = struct{}{}
		}
	}
	return out
}

// sortedViolations returns violations stable-sorted by rule name, then
// file, then message (§5: "violation collector uses a stable post-merge
// sort").
func sortedViolations(violations []lint.Violation) []lint.Violation {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.RuleName != b.RuleName {
			return a.RuleName < b.RuleName
		}
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Message < b.Message
	})
	return violations
}

func isTestFile(path string) bool {
	return strings.Contains(path, ".spec.") || strings.Contains(path, ".test.")
}
