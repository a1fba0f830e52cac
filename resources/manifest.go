package resources

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// LoadManifestJSON validates data (JSON, e.g. a resource manifest
// re-marshaled through internal/manifest, or handed over as-is by a
// caller) against schema, an inline JSON Schema document, before a
// caller trusts any font/theme path the manifest names. Optional - a
// deck only calls this when it was handed an explicit schema - grounded
// on the teacher's compileSchema/Validate split, trimmed to the single
// draft/compile/validate path a resource manifest needs rather than the
// teacher's full cached-compiler machinery.
func LoadManifestJSON(schema, data []byte) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	const resourceURL = "inkstage://manifest-schema.json"
	if err := compiler.AddResource(resourceURL, strings.NewReader(string(schema))); err != nil {
		return fmt.Errorf("resources: loading manifest schema: %w", err)
	}

	validator, err := compiler.Compile(resourceURL)
	if err != nil {
		return fmt.Errorf("resources: compiling manifest schema: %w", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("resources: decoding manifest: %w", err)
	}

	if err := validator.Validate(value); err != nil {
		return &ErrManifestValidation{Path: resourceURL, Err: err}
	}
	return nil
}
