package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/pkg/lint"
)

// FindSynonyms evaluates find_synonyms (§4.4.3): every unordered pair of
// eligible files whose normalized-name Jaro-Winkler similarity meets the
// threshold is reported once.
func FindSynonyms(rule grammar.Rule, ctx *Context) []lint.Violation {
	p := rule.FindSynonyms
	files := filesOf(symbolsWithRole(ctx.Symbols, p.For))

	normalized := make([]string, len(files))
	for i, f := range files {
		normalized[i] = normalizedName(f, p.Thesaurus)
	}

	var violations []lint.Violation
	for i := 0; i < len(files); i++ {
		for j := i + 1; j < len(files); j++ {
			if files[i] == files[j] {
				continue
			}
			score := jaroWinkler(normalized[i], normalized[j])
			if score < p.SimilarityThreshold {
				continue
			}
			violations = append(violations, lint.Violation{
				RuleName: rule.Name,
				Severity: rule.Severity,
				File:     files[i],
				Message:  fmt.Sprintf("%s and %s look like synonyms (similarity %.3f)", files[i], files[j], score),
				FromRole: roleOfPath(ctx.Symbols, files[i]),
			})
		}
	}
	return sortedViolations(violations)
}
