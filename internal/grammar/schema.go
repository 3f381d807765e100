package grammar

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	nooalog "nooa/pkg/nooalog"
)

//go:embed schema.json
var embeddedSchema []byte

// validateStructure runs the optional JSON-schema structural pass (§4.1,
// §6). When the embedded schema is missing or fails to parse as a schema
// itself, structural validation degrades gracefully (returns no issues) and
// only semantic validation (validate.go) runs, per §6.
func validateStructure(rawYAML []byte) []string {
	if len(embeddedSchema) == 0 {
		nooalog.Debugf("No structural schema embedded; skipping structural validation")
		return nil
	}

	schemaLoader := gojsonschema.NewBytesLoader(embeddedSchema)
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		nooalog.Warnf("Embedded grammar schema is itself invalid, skipping structural validation: %v", err)
		return nil
	}

	// gojsonschema needs a JSON-shaped document; re-decode the YAML through
	// yaml.v3 (which already produces map[string]interface{}) and hand it
	// to the in-memory loader rather than round-tripping through JSON text.
	var doc interface{}
	if err := yaml.Unmarshal(rawYAML, &doc); err != nil {
		// Already caught by the caller's own yaml.Unmarshal; treat as no
		// structural issues here and let that error surface instead.
		return nil
	}
	doc = normalizeForSchema(doc)

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		nooalog.Warnf("Structural validation could not run: %v", err)
		return nil
	}

	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, fmt.Sprintf("schema: %s", e.String()))
	}
	return issues
}

// normalizeForSchema converts the map[string]interface{}/[]interface{} tree
// yaml.v3 produces into the map[string]interface{} shape gojsonschema
// expects consistently (yaml.v3 already avoids map[interface{}]interface{},
// but nested scalars like int vs float64 still need no special handling
// here, kept as a single recursive pass for clarity).
func normalizeForSchema(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalizeForSchema(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalizeForSchema(val)
		}
		return out
	default:
		return v
	}
}
