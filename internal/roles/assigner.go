// Package roles assigns a role name to each parsed symbol by matching its
// file path against the grammar's declared role patterns (§3, §4.2).
package roles

import (
	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// Assign returns a copy of symbols with Role populated from g.Roles. Role
// patterns are matched in declaration order; the first pattern whose regex
// matches the symbol's Path wins (§4.2: "first match wins"). A symbol whose
// path matches no declared role gets lint.UnknownRole, never an error:
// unmatched files are a valid, silent outcome.
func Assign(g *grammar.Grammar, symbols []lint.Symbol) []lint.Symbol {
	out := make([]lint.Symbol, len(symbols))
	for i, sym := range symbols {
		sym.Role = assignOne(g, sym.Path)
		out[i] = sym
	}
	return out
}

func assignOne(g *grammar.Grammar, path string) string {
	for _, role := range g.Roles {
		if role.Pattern.MatchString(path) {
			return role.Name
		}
	}
	return lint.UnknownRole
}
