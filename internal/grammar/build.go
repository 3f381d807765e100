package grammar

import (
	"fmt"
	"regexp"

	"nooa/pkg/lint"
)

// build transforms the raw YAML-decoded document into a Grammar, collecting
// every shape/range problem it finds along the way (§4.1: "per-tag shape ...
// including numeric ranges ... mutual exclusion of to.role and to.circular").
func build(doc map[string]interface{}) (*Grammar, []string) {
	var issues []string
	g := &Grammar{
		Version:  asString(doc["version"]),
		Language: asString(doc["language"]),
	}

	rawRoles, _ := doc["roles"].([]interface{})
	for i, rr := range rawRoles {
		m, ok := rr.(map[string]interface{})
		if !ok {
			issues = append(issues, fmt.Sprintf("roles[%d]: expected a mapping", i))
			continue
		}
		name := asString(m["name"])
		pathSrc := asString(m["path"])
		if name == "" {
			issues = append(issues, fmt.Sprintf("roles[%d]: missing required field 'name'", i))
		}
		if pathSrc == "" {
			issues = append(issues, fmt.Sprintf("role %q: missing required field 'path'", name))
			continue
		}
		pattern, err := regexp.Compile(pathSrc)
		if err != nil {
			issues = append(issues, fmt.Sprintf("role %q: invalid path regex %q: %v", name, pathSrc, err))
			continue
		}
		g.Roles = append(g.Roles, RoleDefinition{
			Name:          name,
			PatternSource: pathSrc,
			Pattern:       pattern,
			Description:   asString(m["description"]),
		})
	}

	rawRules, _ := doc["rules"].([]interface{})
	for i, rr := range rawRules {
		m, ok := rr.(map[string]interface{})
		if !ok {
			issues = append(issues, fmt.Sprintf("rules[%d]: expected a mapping", i))
			continue
		}
		rule, ruleIssues := buildRule(m, i)
		issues = append(issues, ruleIssues...)
		if rule != nil {
			g.Rules = append(g.Rules, *rule)
		}
	}

	return g, issues
}

func buildRule(m map[string]interface{}, index int) (*Rule, []string) {
	var issues []string
	name := asString(m["name"])
	label := name
	if label == "" {
		label = fmt.Sprintf("rules[%d]", index)
	}

	severityStr := asString(m["severity"])
	severity := lint.Severity(severityStr)
	switch severity {
	case lint.SeverityError, lint.SeverityWarning, lint.SeverityInfo:
	default:
		issues = append(issues, fmt.Sprintf("rule %q: severity must be one of error|warning|info, got %q", label, severityStr))
	}

	kind := RuleKind(asString(m["rule"]))
	if name == "" {
		issues = append(issues, fmt.Sprintf("rule at index %d: missing required field 'name'", index))
	}
	if !knownKind(kind) {
		issues = append(issues, fmt.Sprintf("rule %q: unknown rule kind %q", label, kind))
		return nil, issues
	}

	rule := &Rule{
		Name:     name,
		Severity: severity,
		Kind:     kind,
		Comment:  asString(m["comment"]),
	}

	var kindIssues []string
	switch kind {
	case KindDependency:
		rule.Dependency, kindIssues = buildDependencyParams(m, label)
	case KindNamingPattern:
		rule.NamingPattern, kindIssues = buildNamingPatternParams(m, label)
	case KindFindSynonyms:
		rule.FindSynonyms, kindIssues = buildFindSynonymsParams(m, label)
	case KindDetectUnreferenced:
		rule.DetectUnreferenced, kindIssues = buildDetectUnreferencedParams(m, label)
	case KindFileSize:
		rule.FileSize, kindIssues = buildFileSizeParams(m, label)
	case KindTestCoverage:
		rule.TestCoverage, kindIssues = buildTestCoverageParams(m, label)
	case KindClassComplexity:
		rule.ClassComplexity, kindIssues = buildClassComplexityParams(m, label)
	case KindDocumentationRequired:
		rule.DocumentationRequired, kindIssues = buildDocumentationRequiredParams(m, label)
	case KindForbiddenKeywords:
		rule.ForbiddenKeywords, kindIssues = buildForbiddenKeywordsParams(m, label)
	case KindForbiddenPatterns:
		rule.ForbiddenPatterns, kindIssues = buildForbiddenPatternsParams(m, label)
	case KindBarrelPurity:
		rule.BarrelPurity, kindIssues = buildBarrelPurityParams(m, label)
	case KindRequiredStructure:
		rule.RequiredStructure, kindIssues = buildRequiredStructureParams(m, label)
	case KindMinimumTestRatio:
		rule.MinimumTestRatio, kindIssues = buildMinimumTestRatioParams(m, label)
	case KindGranularityMetric:
		rule.GranularityMetric, kindIssues = buildGranularityMetricParams(m, label)
	}
	issues = append(issues, kindIssues...)

	return rule, issues
}

func knownKind(k RuleKind) bool {
	for _, candidate := range AllKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// --- role reference parsing ---

func buildRoleReference(v interface{}, label, field string) (RoleReference, []string) {
	switch t := v.(type) {
	case nil:
		return RoleReference{}, []string{fmt.Sprintf("rule %q: missing required field %q", label, field)}
	case string:
		if t == ALL {
			return RoleReference{All: true}, nil
		}
		return RoleReference{Roles: []string{t}}, nil
	case []interface{}:
		var roles []string
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return RoleReference{}, []string{fmt.Sprintf("rule %q: field %q must be a role name or list of role names", label, field)}
			}
			roles = append(roles, s)
		}
		if len(roles) == 0 {
			return RoleReference{}, []string{fmt.Sprintf("rule %q: field %q must not be an empty list", label, field)}
		}
		return RoleReference{Roles: roles}, nil
	default:
		return RoleReference{}, []string{fmt.Sprintf("rule %q: field %q has unexpected shape", label, field)}
	}
}

// --- per-kind builders ---

func buildDependencyParams(m map[string]interface{}, label string) (*DependencyParams, []string) {
	var issues []string
	from, fromIssues := buildRoleReference(m["from"], label, "from")
	issues = append(issues, fromIssues...)

	p := &DependencyParams{From: from}

	toVal := m["to"]
	toMap, toIsMap := toVal.(map[string]interface{})
	circular := toIsMap && asBool(toMap["circular"])

	if circular {
		p.Circular = true
	} else {
		to, toIssues := buildRoleReference(toVal, label, "to")
		issues = append(issues, toIssues...)
		p.To = to
	}

	if !p.Circular {
		p.Mode = DependencyMode(asString(m["type"]))
	}
	if !p.Circular {
		switch p.Mode {
		case DependencyAllowed, DependencyForbidden, DependencyRequired:
		default:
			issues = append(issues, fmt.Sprintf("rule %q: dependency mode must be one of allowed|forbidden|required, got %q", label, p.Mode))
		}
	}

	return p, issues
}

func buildNamingPatternParams(m map[string]interface{}, label string) (*NamingPatternParams, []string) {
	var issues []string
	forRef, forIssues := buildRoleReference(m["for"], label, "for")
	issues = append(issues, forIssues...)

	patternSrc := asString(m["pattern"])
	if patternSrc == "" {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'pattern'", label))
		return &NamingPatternParams{For: forRef}, issues
	}
	re, err := regexp.Compile(patternSrc)
	if err != nil {
		issues = append(issues, fmt.Sprintf("rule %q: invalid pattern regex %q: %v", label, patternSrc, err))
		return &NamingPatternParams{For: forRef, PatternSource: patternSrc}, issues
	}
	return &NamingPatternParams{For: forRef, PatternSource: patternSrc, Pattern: re}, issues
}

func buildFindSynonymsParams(m map[string]interface{}, label string) (*FindSynonymsParams, []string) {
	var issues []string
	forRef, forIssues := buildRoleReference(m["for"], label, "for")
	issues = append(issues, forIssues...)

	threshold, hasThreshold := asFloat(m["similarity_threshold"])
	if !hasThreshold {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'similarity_threshold'", label))
	} else if threshold < 0 || threshold > 1 {
		issues = append(issues, fmt.Sprintf("rule %q: similarity_threshold must be within [0,1], got %v", label, threshold))
	}

	var thesaurus []SynonymGroup
	if raw, ok := m["thesaurus"].([]interface{}); ok {
		for _, g := range raw {
			groupRaw, ok := g.([]interface{})
			if !ok {
				issues = append(issues, fmt.Sprintf("rule %q: thesaurus entries must be lists of synonyms", label))
				continue
			}
			var group SynonymGroup
			for _, s := range groupRaw {
				if str, ok := s.(string); ok {
					group = append(group, str)
				}
			}
			if len(group) > 0 {
				thesaurus = append(thesaurus, group)
			}
		}
	}

	return &FindSynonymsParams{For: forRef, SimilarityThreshold: threshold, Thesaurus: thesaurus}, issues
}

func buildDetectUnreferencedParams(m map[string]interface{}, label string) (*DetectUnreferencedParams, []string) {
	var issues []string
	forRef, forIssues := buildRoleReference(m["for"], label, "for")
	issues = append(issues, forIssues...)

	var ignore []string
	if raw, ok := m["ignore_patterns"].([]interface{}); ok {
		for _, p := range raw {
			if str, ok := p.(string); ok {
				ignore = append(ignore, str)
			}
		}
	}
	return &DetectUnreferencedParams{For: forRef, IgnorePatterns: ignore}, issues
}

func buildFileSizeParams(m map[string]interface{}, label string) (*FileSizeParams, []string) {
	var issues []string
	forRef, forIssues := buildRoleReference(m["for"], label, "for")
	issues = append(issues, forIssues...)

	maxLines, ok := asInt(m["max_lines"])
	if !ok {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'max_lines'", label))
	} else if maxLines < 1 {
		issues = append(issues, fmt.Sprintf("rule %q: max_lines must be >= 1, got %d", label, maxLines))
	}
	return &FileSizeParams{For: forRef, MaxLines: maxLines}, issues
}

func buildTestCoverageParams(m map[string]interface{}, label string) (*TestCoverageParams, []string) {
	var issues []string
	fromRef, fromIssues := buildRoleReference(m["from"], label, "from")
	issues = append(issues, fromIssues...)

	toMap, _ := m["to"].(map[string]interface{})
	if toMap == nil || asString(toMap["test_file"]) != "required" {
		issues = append(issues, fmt.Sprintf("rule %q: test_coverage requires to.test_file: \"required\"", label))
	}
	return &TestCoverageParams{From: fromRef}, issues
}

func buildClassComplexityParams(m map[string]interface{}, label string) (*ClassComplexityParams, []string) {
	var issues []string
	forRef, forIssues := buildRoleReference(m["for"], label, "for")
	issues = append(issues, forIssues...)

	maxMethods, okM := asInt(m["max_public_methods"])
	if !okM {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'max_public_methods'", label))
	} else if maxMethods < 1 {
		issues = append(issues, fmt.Sprintf("rule %q: max_public_methods must be >= 1, got %d", label, maxMethods))
	}
	maxProps, okP := asInt(m["max_properties"])
	if !okP {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'max_properties'", label))
	} else if maxProps < 1 {
		issues = append(issues, fmt.Sprintf("rule %q: max_properties must be >= 1, got %d", label, maxProps))
	}
	return &ClassComplexityParams{For: forRef, MaxPublicMethods: maxMethods, MaxProperties: maxProps}, issues
}

func buildDocumentationRequiredParams(m map[string]interface{}, label string) (*DocumentationRequiredParams, []string) {
	var issues []string
	forRef, forIssues := buildRoleReference(m["for"], label, "for")
	issues = append(issues, forIssues...)

	minLines, ok := asInt(m["min_lines"])
	if !ok {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'min_lines'", label))
	} else if minLines < 0 {
		issues = append(issues, fmt.Sprintf("rule %q: min_lines must be >= 0, got %d", label, minLines))
	}
	return &DocumentationRequiredParams{For: forRef, MinLines: minLines, RequiresJSDoc: asBool(m["requires_jsdoc"])}, issues
}

func buildForbiddenKeywordsParams(m map[string]interface{}, label string) (*ForbiddenKeywordsParams, []string) {
	var issues []string
	fromRef, fromIssues := buildRoleReference(m["from"], label, "from")
	issues = append(issues, fromIssues...)

	keywords := asStringList(m["contains_forbidden"])
	if len(keywords) == 0 {
		issues = append(issues, fmt.Sprintf("rule %q: contains_forbidden must be a non-empty list", label))
	}
	return &ForbiddenKeywordsParams{From: fromRef, ContainsForbidden: keywords}, issues
}

func buildForbiddenPatternsParams(m map[string]interface{}, label string) (*ForbiddenPatternsParams, []string) {
	var issues []string
	fromRef, fromIssues := buildRoleReference(m["from"], label, "from")
	issues = append(issues, fromIssues...)

	sources := asStringList(m["contains_forbidden"])
	if len(sources) == 0 {
		issues = append(issues, fmt.Sprintf("rule %q: contains_forbidden must be a non-empty list", label))
	}
	var compiled []*regexp.Regexp
	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			issues = append(issues, fmt.Sprintf("rule %q: invalid forbidden pattern regex %q: %v", label, src, err))
			continue
		}
		compiled = append(compiled, re)
	}
	return &ForbiddenPatternsParams{From: fromRef, ContainsForbiddenSource: sources, ContainsForbidden: compiled}, issues
}

func buildBarrelPurityParams(m map[string]interface{}, label string) (*BarrelPurityParams, []string) {
	var issues []string
	forMap, _ := m["for"].(map[string]interface{})
	filePatternSrc := ""
	if forMap != nil {
		filePatternSrc = asString(forMap["file_pattern"])
	}
	if filePatternSrc == "" {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'for.file_pattern'", label))
	}
	var filePattern *regexp.Regexp
	if filePatternSrc != "" {
		re, err := regexp.Compile(filePatternSrc)
		if err != nil {
			issues = append(issues, fmt.Sprintf("rule %q: invalid file_pattern regex %q: %v", label, filePatternSrc, err))
		} else {
			filePattern = re
		}
	}

	sources := asStringList(m["contains_forbidden"])
	if len(sources) == 0 {
		issues = append(issues, fmt.Sprintf("rule %q: contains_forbidden must be a non-empty list", label))
	}
	var compiled []*regexp.Regexp
	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			issues = append(issues, fmt.Sprintf("rule %q: invalid forbidden pattern regex %q: %v", label, src, err))
			continue
		}
		compiled = append(compiled, re)
	}

	return &BarrelPurityParams{
		FilePatternSource:       filePatternSrc,
		FilePattern:             filePattern,
		ContainsForbiddenSource: sources,
		ContainsForbidden:       compiled,
	}, issues
}

func buildRequiredStructureParams(m map[string]interface{}, label string) (*RequiredStructureParams, []string) {
	var issues []string
	dirs := asStringList(m["required_directories"])
	if len(dirs) == 0 {
		issues = append(issues, fmt.Sprintf("rule %q: required_directories must be a non-empty list", label))
	}
	return &RequiredStructureParams{RequiredDirectories: dirs}, issues
}

func buildMinimumTestRatioParams(m map[string]interface{}, label string) (*MinimumTestRatioParams, []string) {
	var issues []string
	global, _ := m["global"].(map[string]interface{})
	ratio, ok := asFloat(global["test_ratio"])
	if !ok {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'global.test_ratio'", label))
	} else if ratio < 0 || ratio > 1 {
		issues = append(issues, fmt.Sprintf("rule %q: global.test_ratio must be within [0,1], got %v", label, ratio))
	}
	return &MinimumTestRatioParams{TestRatio: ratio}, issues
}

func buildGranularityMetricParams(m map[string]interface{}, label string) (*GranularityMetricParams, []string) {
	var issues []string
	global, _ := m["global"].(map[string]interface{})
	target, okT := asFloat(global["target_loc_per_file"])
	if !okT {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'global.target_loc_per_file'", label))
	} else if target <= 0 {
		issues = append(issues, fmt.Sprintf("rule %q: global.target_loc_per_file must be > 0, got %v", label, target))
	}
	multiplier, okM := asFloat(global["warning_threshold_multiplier"])
	if !okM {
		issues = append(issues, fmt.Sprintf("rule %q: missing required field 'global.warning_threshold_multiplier'", label))
	} else if multiplier <= 0 {
		issues = append(issues, fmt.Sprintf("rule %q: global.warning_threshold_multiplier must be > 0, got %v", label, multiplier))
	}
	return &GranularityMetricParams{TargetLOCPerFile: target, WarningThresholdMultiplier: multiplier}, issues
}

// --- scalar coercion helpers (decoded YAML values arrive as interface{}) ---

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}

func asInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}

func asStringList(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
