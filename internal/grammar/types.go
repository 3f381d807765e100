// Package grammar models the declarative document that assigns roles to
// files by path pattern and declares rules over those roles (§3, §6 of the
// architecture specification). A Grammar is built once by Load and shared
// read-only for the remainder of an invocation.
package grammar

import (
	"regexp"

	"nooa/pkg/lint"
)

// RuleKind discriminates the 14 rule variants a Grammar can declare. The
// rule set is closed: dispatch over Kind goes through the fixed map
// literal in internal/rules/registry.go, never an open registry.
type RuleKind string

const (
	KindDependency            RuleKind = "dependency"
	KindNamingPattern         RuleKind = "naming_pattern"
	KindFindSynonyms          RuleKind = "find_synonyms"
	KindDetectUnreferenced    RuleKind = "detect_unreferenced"
	KindFileSize              RuleKind = "file_size"
	KindTestCoverage          RuleKind = "test_coverage"
	KindClassComplexity       RuleKind = "class_complexity"
	KindDocumentationRequired RuleKind = "documentation_required"
	KindForbiddenKeywords     RuleKind = "forbidden_keywords"
	KindForbiddenPatterns     RuleKind = "forbidden_patterns"
	KindBarrelPurity          RuleKind = "barrel_purity"
	KindRequiredStructure     RuleKind = "required_structure"
	KindMinimumTestRatio      RuleKind = "minimum_test_ratio"
	KindGranularityMetric     RuleKind = "granularity_metric"
)

// AllKinds lists every known rule kind, in the order §3's table presents
// them. Used by validation to produce a helpful "unknown rule kind" message.
var AllKinds = []RuleKind{
	KindDependency, KindNamingPattern, KindFindSynonyms, KindDetectUnreferenced,
	KindFileSize, KindTestCoverage, KindClassComplexity, KindDocumentationRequired,
	KindForbiddenKeywords, KindForbiddenPatterns, KindBarrelPurity,
	KindRequiredStructure, KindMinimumTestRatio, KindGranularityMetric,
}

// ALL is the meta role-reference token matching any role including UNKNOWN.
const ALL = "ALL"

// RoleReference is one of: a single role name, an ordered set of role
// names, or the meta-token ALL.
type RoleReference struct {
	All   bool
	Roles []string
}

// Matches reports whether role satisfies this reference.
func (r RoleReference) Matches(role string) bool {
	if r.All {
		return true
	}
	for _, candidate := range r.Roles {
		if candidate == role {
			return true
		}
	}
	return false
}

// Empty reports whether the reference was never populated (absent field).
func (r RoleReference) Empty() bool {
	return !r.All && len(r.Roles) == 0
}

// RoleDefinition assigns a role name to files whose path matches Pattern.
// Order within Grammar.Roles matters: first match wins.
type RoleDefinition struct {
	Name          string
	PatternSource string
	Pattern       *regexp.Regexp
	Description   string
}

// DependencyMode distinguishes the three non-circular dependency rule
// behaviors (§4.4.1).
type DependencyMode string

const (
	DependencyAllowed   DependencyMode = "allowed"
	DependencyForbidden DependencyMode = "forbidden"
	DependencyRequired  DependencyMode = "required"
)

type DependencyParams struct {
	From     RoleReference
	Mode     DependencyMode
	To       RoleReference
	Circular bool
}

type NamingPatternParams struct {
	For           RoleReference
	PatternSource string
	Pattern       *regexp.Regexp
}

type SynonymGroup []string

type FindSynonymsParams struct {
	For                 RoleReference
	SimilarityThreshold float64
	Thesaurus           []SynonymGroup
}

type DetectUnreferencedParams struct {
	For            RoleReference
	IgnorePatterns []string
}

type FileSizeParams struct {
	For      RoleReference
	MaxLines int
}

// TestCoverageParams models `from` + `to.test_file: required`; the literal
// "required" is the only value §3 defines, so it is not separately stored.
type TestCoverageParams struct {
	From RoleReference
}

type ClassComplexityParams struct {
	For              RoleReference
	MaxPublicMethods int
	MaxProperties    int
}

type DocumentationRequiredParams struct {
	For           RoleReference
	MinLines      int
	RequiresJSDoc bool
}

type ForbiddenKeywordsParams struct {
	From              RoleReference
	ContainsForbidden []string
}

type ForbiddenPatternsParams struct {
	From                    RoleReference
	ContainsForbiddenSource []string
	ContainsForbidden       []*regexp.Regexp
}

type BarrelPurityParams struct {
	FilePatternSource       string
	FilePattern             *regexp.Regexp
	ContainsForbiddenSource []string
	ContainsForbidden       []*regexp.Regexp
}

type RequiredStructureParams struct {
	RequiredDirectories []string
}

type MinimumTestRatioParams struct {
	TestRatio float64
}

type GranularityMetricParams struct {
	TargetLOCPerFile           float64
	WarningThresholdMultiplier float64
}

// Rule is the tagged variant over the 14 rule kinds. Exactly one of the
// kind-specific param fields is populated, selected by Kind.
type Rule struct {
	Name     string
	Severity lint.Severity
	Kind     RuleKind
	Comment  string

	Dependency            *DependencyParams
	NamingPattern         *NamingPatternParams
	FindSynonyms          *FindSynonymsParams
	DetectUnreferenced    *DetectUnreferencedParams
	FileSize              *FileSizeParams
	TestCoverage          *TestCoverageParams
	ClassComplexity       *ClassComplexityParams
	DocumentationRequired *DocumentationRequiredParams
	ForbiddenKeywords     *ForbiddenKeywordsParams
	ForbiddenPatterns     *ForbiddenPatternsParams
	BarrelPurity          *BarrelPurityParams
	RequiredStructure     *RequiredStructureParams
	MinimumTestRatio      *MinimumTestRatioParams
	GranularityMetric     *GranularityMetricParams
}

// Grammar is the immutable, validated document loaded once per invocation.
type Grammar struct {
	Version string
	Language string
	Roles   []RoleDefinition
	Rules   []Rule
}

// RoleNames returns the declared role names, in declaration order.
func (g *Grammar) RoleNames() []string {
	names := make([]string, len(g.Roles))
	for i, r := range g.Roles {
		names[i] = r.Name
	}
	return names
}

// RulesOfKind returns the subset of Grammar.Rules matching kind, preserving
// declaration order.
func (g *Grammar) RulesOfKind(kind RuleKind) []Rule {
	var out []Rule
	for _, r := range g.Rules {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
