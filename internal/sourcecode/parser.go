// Package sourcecode provides the default lint.CodeParser: a lexical,
// regex-driven extractor rather than a real language parser (§1 Non-goals:
// "only analyzes lexical structure ... via rule-owned regular
// expressions"). A concrete AST-backed implementation is a legitimate
// alternate collaborator but is not provided here.
package sourcecode

import (
	"path"
	"regexp"
	"strings"

	"nooa/pkg/lint"
)

var (
	exportDeclPattern = regexp.MustCompile(`(?m)^export\s+(?:default\s+)?(?:abstract\s+)?(class|interface|function|type)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	importFromPattern = regexp.MustCompile(`(?m)import(?:\s+type)?\s+(?:[\w*${},\s]+\s+from\s+)?['"]([^'"]+)['"]`)
	exportFromPattern = regexp.MustCompile(`(?m)export\s+(?:\*|\{[^}]*\})\s*(?:as\s+\w+\s+)?from\s+['"]([^'"]+)['"]`)
	requirePattern    = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
)

// Parser is the default lint.CodeParser. It reads each file's content
// through a FileReader, extracts exported declarations and import/
// re-export targets with regular expressions, and resolves relative
// import paths against the enumerated project file set.
type Parser struct {
	Reader lint.FileReader
}

func NewParser(reader lint.FileReader) *Parser {
	return &Parser{Reader: reader}
}

// Parse implements lint.CodeParser. files is the project-relative,
// forward-slash-normalized file list from the Enumerator.
func (p *Parser) Parse(projectRoot string, files []string) ([]lint.Symbol, error) {
	resolver := newResolver(files)

	var out []lint.Symbol
	for _, file := range files {
		text, err := p.Reader.ReadFile(file)
		if err != nil {
			return nil, err
		}

		deps := resolveDependencies(file, text, resolver)
		decls := exportDeclPattern.FindAllStringSubmatch(text, -1)

		if len(decls) == 0 {
			out = append(out, lint.Symbol{
				Path:         file,
				Name:         baseNameWithoutExt(file),
				Kind:         lint.KindFile,
				Dependencies: deps,
			})
			continue
		}

		for _, decl := range decls {
			out = append(out, lint.Symbol{
				Path:         file,
				Name:         decl[2],
				Kind:         declKind(decl[1]),
				Dependencies: deps,
			})
		}
	}
	return out, nil
}

func declKind(tag string) lint.SymbolKind {
	switch tag {
	case "class":
		return lint.KindClass
	case "interface":
		return lint.KindInterface
	case "function":
		return lint.KindFunction
	case "type":
		return lint.KindType
	default:
		return lint.KindFile
	}
}

func baseNameWithoutExt(file string) string {
	base := path.Base(file)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

func resolveDependencies(file, text string, resolver *resolver) map[string]struct{} {
	deps := make(map[string]struct{})
	addAll := func(matches [][]string) {
		for _, m := range matches {
			if resolved, ok := resolver.resolve(file, m[1]); ok {
				deps[resolved] = struct{}{}
			}
		}
	}
	addAll(importFromPattern.FindAllStringSubmatch(text, -1))
	addAll(exportFromPattern.FindAllStringSubmatch(text, -1))
	addAll(requirePattern.FindAllStringSubmatch(text, -1))
	return deps
}
