package rules

import (
	"fmt"
	"sort"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// Dependency evaluates the four dependency rule flavors (§4.4.1).
func Dependency(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.Dependency
	if p.Circular {
		return circularViolations(rule, ctx)
	}

	from := symbolsWithRole(ctx.Symbols, p.From)
	var violations []lint.Violation

	switch p.Mode {
	case grammar.DependencyForbidden:
		for _, s := range from {
			for dep := range s.Dependencies {
				depRole := roleOfPath(ctx.Symbols, dep)
				if p.To.Matches(depRole) {
					violations = append(violations, lint.Violation{
						RuleName: rule.Name,
						Severity: rule.Severity,
						File:     s.Path,
						Message:  fmt.Sprintf("%s must not depend on %s (forbidden: %s -> %s)", s.Path, dep, s.Role, depRole),
						FromRole: s.Role,
						ToRole:   depRole,
						Dependency: dep,
					})
				}
			}
		}
	case grammar.DependencyAllowed:
		for _, s := range from {
			for dep := range s.Dependencies {
				depRole := roleOfPath(ctx.Symbols, dep)
				if depRole == lint.UnknownRole {
					continue
				}
				if !p.To.Matches(depRole) {
					violations = append(violations, lint.Violation{
						RuleName: rule.Name,
						Severity: rule.Severity,
						File:     s.Path,
						Message:  fmt.Sprintf("%s depends on %s (%s), which is outside the allowed roles", s.Path, dep, depRole),
						FromRole: s.Role,
						ToRole:   depRole,
						Dependency: dep,
					})
				}
			}
		}
	case grammar.DependencyRequired:
		for _, s := range from {
			satisfied := false
			for dep := range s.Dependencies {
				if p.To.Matches(roleOfPath(ctx.Symbols, dep)) {
					satisfied = true
					break
				}
			}
			if !satisfied {
				violations = append(violations, lint.Violation{
					RuleName: rule.Name,
					Severity: rule.Severity,
					File:     s.Path,
					Message:  fmt.Sprintf("%s has no dependency on any required role", s.Path),
					FromRole: s.Role,
				})
			}
		}
	}

	return sortedViolations(violations)
}

// circularViolations runs the cycle detector on the subgraph induced by
// nodes whose role satisfies from.role, with edges kept only when both
// endpoints are in that subgraph (§4.4.1).
func circularViolations(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.Dependency
	nodeFiles := filesOf(symbolsWithRole(ctx.Symbols, p.From))

	inSubgraph := make(map[string]bool, len(nodeFiles))
	for _, f := range nodeFiles {
		inSubgraph[f] = true
	}

	adjacency := make(map[string][]string, len(nodeFiles))
	for _, f := range nodeFiles {
		deps := dependenciesOfPath(ctx.Symbols, f)
		var edges []string
		for dep := range deps {
			if inSubgraph[dep] {
				edges = append(edges, dep)
			}
		}
		sort.Strings(edges)
		adjacency[f] = edges
	}

	cycles := detectCycles(nodeFiles, adjacency)

	var violations []lint.Violation
	for _, cycle := range cycles {
		violations = append(violations, lint.Violation{
			RuleName: rule.Name,
			Severity: rule.Severity,
			File:     cycle[0],
			Message:  fmt.Sprintf("circular dependency: %v", cycle),
			FromRole: roleOfPath(ctx.Symbols, cycle[0]),
		})
	}
	return sortedViolations(violations)
}

type dfsColor int

const (
	white dfsColor = iota
	gray
	black
)

// detectCycles runs DFS with tri-state coloring over nodes (path-sorted
// start order) and reports each cycle (self-loop, or any back-edge closing
// a strongly-connected path) in discovery order, citing its first node.
func detectCycles(nodes []string, adjacency map[string][]string) [][]string {
	sorted := append([]string(nil), nodes...)
	sort.Strings(sorted)

	color := make(map[string]dfsColor, len(sorted))
	for _, n := range sorted {
		color[n] = white
	}

	var cycles [][]string
	var stack []string
	onStack := make(map[string]int)

	var visit func(node string)
	visit = func(node string) {
		color[node] = gray
		stack = append(stack, node)
		onStack[node] = len(stack) - 1

		for _, next := range adjacency[node] {
			switch color[next] {
			case white:
				visit(next)
			case gray:
				start := onStack[next]
				cycle := append([]string(nil), stack[start:]...)
				cycles = append(cycles, cycle)
			case black:
				// already fully explored, no new cycle through this edge
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, node)
		color[node] = black
	}

	for _, n := range sorted {
		if color[n] == white {
			visit(n)
		}
	}
	return cycles
}
