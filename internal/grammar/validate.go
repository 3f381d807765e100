package grammar

import "fmt"

// validateSemantics checks everything build() cannot check in isolation:
// references between rules and roles, and cross-rule invariants like
// duplicate names (§4.1: "dangling role reference", "duplicate rule name").
// All issues found are collected and surfaced together, same as build().
func validateSemantics(g *Grammar) []string {
	var issues []string

	known := make(map[string]struct{}, len(g.Roles))
	for _, r := range g.Roles {
		if _, dup := known[r.Name]; dup {
			issues = append(issues, fmt.Sprintf("role %q is declared more than once", r.Name))
			continue
		}
		known[r.Name] = struct{}{}
	}

	seenRuleNames := make(map[string]struct{}, len(g.Rules))
	for _, rule := range g.Rules {
		if _, dup := seenRuleNames[rule.Name]; dup {
			issues = append(issues, fmt.Sprintf("rule name %q is used more than once", rule.Name))
		}
		seenRuleNames[rule.Name] = struct{}{}

		issues = append(issues, checkRoleRefs(rule, known)...)
	}

	return issues
}

func checkRoleRefs(rule Rule, known map[string]struct{}) []string {
	var issues []string
	check := func(ref RoleReference, field string) {
		if ref.All {
			return
		}
		for _, role := range ref.Roles {
			if _, ok := known[role]; !ok {
				issues = append(issues, fmt.Sprintf("rule %q: %s references undeclared role %q", rule.Name, field, role))
			}
		}
	}

	switch rule.Kind {
	case KindDependency:
		p := rule.Dependency
		check(p.From, "from")
		if !p.Circular {
			check(p.To, "to")
		}
	case KindNamingPattern:
		check(rule.NamingPattern.For, "for")
	case KindFindSynonyms:
		check(rule.FindSynonyms.For, "for")
	case KindDetectUnreferenced:
		check(rule.DetectUnreferenced.For, "for")
	case KindFileSize:
		check(rule.FileSize.For, "for")
	case KindTestCoverage:
		check(rule.TestCoverage.From, "from")
	case KindClassComplexity:
		check(rule.ClassComplexity.For, "for")
	case KindDocumentationRequired:
		check(rule.DocumentationRequired.For, "for")
	case KindForbiddenKeywords:
		check(rule.ForbiddenKeywords.From, "from")
	case KindForbiddenPatterns:
		check(rule.ForbiddenPatterns.From, "from")
	case KindBarrelPurity, KindRequiredStructure, KindMinimumTestRatio, KindGranularityMetric:
		// These kinds carry no role.Reference fields to validate.
	}
	return issues
}
