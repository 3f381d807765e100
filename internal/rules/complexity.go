package rules

import (
	"fmt"
	"regexp"
	"strings"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

var (
	classHeaderPattern = regexp.MustCompile(`(?m)^(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	methodLinePattern  = regexp.MustCompile(`^\s*(?:public\s+)?(?:async\s+)?(?:static\s+)?[A-Za-z_$][A-Za-z0-9_$]*\s*\([^)]*\)\s*(?::\s*[\w<>\[\].,\s]+)?\s*\{`)
	propertyLinePattern = regexp.MustCompile(`^\s*(?:public\s+)?(?:readonly\s+)?[A-Za-z_$][A-Za-z0-9_$]*\s*[?!]?\s*:\s*[^=;(){}]+[;=]`)
	privateLinePattern  = regexp.MustCompile(`^\s*(?:private|protected)\s`)
)

// ClassComplexity evaluates class_complexity (§4.4.7): for each file whose
// role matches, every class body parsed from cached content is checked
// against max_public_methods and max_properties.
func ClassComplexity(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.ClassComplexity
	files := filesOf(symbolsWithRole(ctx.Symbols, p.For))

	var violations []lint.Violation
	for _, f := range files {
		text, ok := ctx.Cache.Get(f)
		if !ok {
			continue
		}
		for _, cls := range classBodies(text) {
			methods, props := countMembers(cls.body)
			if methods <= p.MaxPublicMethods && props <= p.MaxProperties {
				continue
			}
			violations = append(violations, lint.Violation{
				RuleName: rule.Name,
				Severity: rule.Severity,
				File:     f,
				Message:  fmt.Sprintf("class %s in %s has %d public methods and %d properties (limits: %d, %d)", cls.name, f, methods, props, p.MaxPublicMethods, p.MaxProperties),
				FromRole: roleOfPath(ctx.Symbols, f),
			})
		}
	}
	return sortedViolations(violations)
}

type classBody struct {
	name string
	body string
}

// classBodies extracts each `class NAME { ... }` span via brace matching,
// consistent with this engine's lexical (non-AST) analysis discipline.
func classBodies(text string) []classBody {
	var out []classBody
	for _, loc := range classHeaderPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		openIdx := strings.IndexByte(text[loc[1]:], '{')
		if openIdx < 0 {
			continue
		}
		start := loc[1] + openIdx
		end := matchingBrace(text, start)
		if end < 0 {
			continue
		}
		out = append(out, classBody{name: name, body: text[start+1 : end]})
	}
	return out
}

func matchingBrace(text string, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func countMembers(body string) (methods, properties int) {
	for _, line := range strings.Split(body, "\n") {
		if privateLinePattern.MatchString(line) {
			continue
		}
		if methodLinePattern.MatchString(line) {
			methods++
			continue
		}
		if propertyLinePattern.MatchString(line) {
			properties++
		}
	}
	return methods, properties
}
