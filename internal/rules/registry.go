package rules

import "nooa/internal/grammar"

// registry binds every grammar.RuleKind to its Evaluator. The rule set is
// closed at load time (§9: "do not use an open registry"); this is a plain
// map literal, not a plugin-discovered collection.
var registry = map[grammar.RuleKind]Evaluator{
	grammar.KindDependency:            Dependency,
	grammar.KindNamingPattern:         NamingPattern,
	grammar.KindFindSynonyms:          FindSynonyms,
	grammar.KindDetectUnreferenced:    DetectUnreferenced,
	grammar.KindFileSize:              FileSize,
	grammar.KindTestCoverage:          TestCoverage,
	grammar.KindClassComplexity:       ClassComplexity,
	grammar.KindDocumentationRequired: DocumentationRequired,
	grammar.KindForbiddenKeywords:     ForbiddenKeywords,
	grammar.KindForbiddenPatterns:     ForbiddenPatterns,
	grammar.KindBarrelPurity:          BarrelPurity,
	grammar.KindRequiredStructure:     RequiredStructure,
	grammar.KindMinimumTestRatio:      MinimumTestRatio,
	grammar.KindGranularityMetric:     GranularityMetric,
}

// Bind returns the Evaluator for kind and whether one is registered.
// Every grammar.AllKinds entry is guaranteed bound; this only ever
// returns false for a kind the grammar package itself doesn't know about,
// which build() already rejects before a Rule with that kind can exist.
func Bind(kind grammar.RuleKind) (Evaluator, bool) {
	ev, ok := registry[kind]
	return ev, ok
}
