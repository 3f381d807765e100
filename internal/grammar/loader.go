package grammar

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	nooalog "nooa/pkg/nooalog"
)

// Candidate grammar filenames tried under the project root, in order.
var candidateFilenames = []string{"nooa.grammar.yaml", "nooa.grammar.yml"}

// Load discovers, parses, and validates the grammar document under
// projectRoot. It returns a *LoadError for any fatal problem (§4.1, §7):
// not found, unparseable, schema mismatch, or semantic violation.
func Load(projectRoot string) (*Grammar, error) {
	path, raw, err := discover(projectRoot)
	if err != nil {
		return nil, err
	}
	return parse(path, raw)
}

// LoadFile parses and validates the grammar document at the given path
// directly, bypassing discovery. Used when the caller names an explicit
// grammar file rather than relying on the project-root lookup.
func LoadFile(path string) (*Grammar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Stage: "discover", Err: fmt.Errorf("failed to read grammar file %q: %w", path, err)}
	}
	return parse(path, raw)
}

func parse(path string, raw []byte) (*Grammar, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Stage: "parse", Err: fmt.Errorf("grammar file %q is not valid YAML: %w", path, err)}
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	if verrs := validateStructure(raw); len(verrs) > 0 {
		return nil, &LoadError{Stage: "schema", Issues: verrs}
	}

	g, buildErrs := build(doc)
	if len(buildErrs) > 0 {
		return nil, &LoadError{Stage: "schema", Issues: buildErrs}
	}

	if semErrs := validateSemantics(g); len(semErrs) > 0 {
		return nil, &LoadError{Stage: "semantic", Issues: semErrs}
	}

	nooalog.Infof("Loaded grammar %q: %d roles, %d rules", path, len(g.Roles), len(g.Rules))
	return g, nil
}

// discover tries each candidate filename under projectRoot in turn and
// returns the first one found along with its raw bytes.
func discover(projectRoot string) (string, []byte, error) {
	for _, name := range candidateFilenames {
		path := filepath.Join(projectRoot, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return path, data, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, &LoadError{Stage: "discover", Err: fmt.Errorf("failed to read grammar file %q: %w", path, err)}
		}
	}
	return "", nil, &LoadError{Stage: "discover", Err: fmt.Errorf("Grammar file not found")}
}
