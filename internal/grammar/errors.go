package grammar

import "strings"

// LoadError is the single fatal error Load can return (§7: fatal
// configuration errors). It carries either a single wrapped Err (discovery
// or parse failure) or a list of Issues collected from one validation pass
// (§4.1: "All errors from one pass are surfaced together").
type LoadError struct {
	Stage  string
	Err    error
	Issues []string
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	switch len(e.Issues) {
	case 0:
		return "grammar: invalid (no detail)"
	case 1:
		return "grammar: " + e.Issues[0]
	default:
		return "grammar: " + strings.Join(e.Issues, "; ")
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
