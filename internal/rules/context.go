// Package rules implements the 14 RuleEvaluators (§4.4) and the dispatcher
// that routes each grammar rule to its evaluator by kind.
package rules

import (
	"nooa/internal/content"
	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// Context bundles the read-only, frozen state every evaluator consumes
// (§4.4, §9 "Shared read-only state"): the roled symbol list, the filled
// content cache, the full enumerated file list (needed by the project-
// level and test-coverage evaluators), and the directory-existence
// collaborator required_structure needs.
type Context struct {
	Symbols []lint.Symbol
	Files   []string
	Cache   *content.Cache
	Dirs    lint.DirectoryExistenceChecker
}

// Evaluator evaluates one grammar.Rule against the shared Context and
// returns zero or more violations. An evaluator never errors: rule-logic
// failures are findings, not control flow (§4.4, §7).
type Evaluator func(rule grammar.Rule, ctx *Context) []lint.Violation
