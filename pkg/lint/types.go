// Package lint defines the data contracts that cross the boundary between
// nooa's analysis core and its collaborators: the source-code parser, the
// file-system adapters, and the callers consuming an analysis result.
package lint

// SymbolKind classifies a declaration a CodeParser extracted from a file.
type SymbolKind string

const (
	KindClass     SymbolKind = "class"
	KindInterface SymbolKind = "interface"
	KindFunction  SymbolKind = "function"
	KindType      SymbolKind = "type"
	KindFile      SymbolKind = "file"
)

// UnknownRole is assigned to any symbol whose path matches none of the
// grammar's role patterns.
const UnknownRole = "UNKNOWN"

// Symbol is one exported declaration within a file, or a synthetic
// file-level symbol when the file exports nothing. Multiple symbols may
// share the same Path.
type Symbol struct {
	Path         string
	Name         string
	Kind         SymbolKind
	Dependencies map[string]struct{}
	Role         string
}

// HasDependency reports whether the symbol directly depends on path.
func (s Symbol) HasDependency(path string) bool {
	_, ok := s.Dependencies[path]
	return ok
}

// Severity is the importance a rule assigns to a violation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Violation describes one failed rule evaluation against a specific file.
// Violations are values: they are never reused or mutated once produced.
type Violation struct {
	RuleName   string   `json:"rule_name"`
	Severity   Severity `json:"severity"`
	File       string   `json:"file,omitempty"`
	Message    string   `json:"message"`
	FromRole   string   `json:"from_role,omitempty"`
	ToRole     string   `json:"to_role,omitempty"`
	Dependency string   `json:"dependency,omitempty"`
}
