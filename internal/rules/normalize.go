package rules

import (
	"path"
	"regexp"
	"strings"

	"nooa/internal/grammar"
)

// canonicalSuffixes is stripped, longest first, from a lowercased basename
// before the thesaurus is applied (§4.4.3).
var canonicalSuffixes = []string{
	"implementation", "use-case", "usecase", "impl", "adapter",
	"repository", "controller", "service", "factory", "builder",
	"creator", "generator",
}

var suffixPattern = buildSuffixPattern()

func buildSuffixPattern() *regexp.Regexp {
	escaped := make([]string, len(canonicalSuffixes))
	for i, s := range canonicalSuffixes {
		escaped[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`(?:[-_])?(` + strings.Join(escaped, "|") + `)$`)
}

// normalizedName computes the §4.4.3 normalized name for a file path: the
// basename without extension, lowercased, with trailing canonical suffixes
// stripped (repeatedly, so the result is idempotent), then every thesaurus
// group's non-canonical members rewritten to the group's first (canonical)
// member as a whole-word substitution.
func normalizedName(filePath string, thesaurus []grammar.SynonymGroup) string {
	name := baseWithoutExt(filePath)
	name = strings.ToLower(name)
	name = stripCanonicalSuffixes(name)
	name = applyThesaurus(name, thesaurus)
	return name
}

func baseWithoutExt(filePath string) string {
	base := path.Base(filePath)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

func stripCanonicalSuffixes(name string) string {
	for {
		loc := suffixPattern.FindStringIndex(name)
		if loc == nil {
			return name
		}
		remainder := name[:loc[0]]
		if remainder == "" {
			return name
		}
		name = remainder
	}
}

func applyThesaurus(name string, thesaurus []grammar.SynonymGroup) string {
	for _, group := range thesaurus {
		if len(group) < 2 {
			continue
		}
		canonical := group[0]
		for _, synonym := range group[1:] {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(synonym) + `\b`)
			name = re.ReplaceAllString(name, canonical)
		}
	}
	return name
}
