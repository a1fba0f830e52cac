package resources

import "fmt"

// ErrFontNotFound is returned by ResolveFont when name isn't a loaded
// family or generic-family alias. Suggestion is the closest loaded family
// name by edit distance, empty when nothing is loaded yet.
type ErrFontNotFound struct {
	Name       string
	Suggestion string
}

func (e *ErrFontNotFound) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("resources: font %q not found", e.Name)
	}
	return fmt.Sprintf("resources: font %q not found, did you mean %q?", e.Name, e.Suggestion)
}

// ErrManifestValidation wraps a jsonschema validation failure against a
// loaded resource manifest, keeping the underlying schema error available
// for diagnostics while giving callers one error type to check for.
type ErrManifestValidation struct {
	Path string
	Err  error
}

func (e *ErrManifestValidation) Error() string {
	return fmt.Sprintf("resources: manifest %s failed validation: %v", e.Path, e.Err)
}

func (e *ErrManifestValidation) Unwrap() error {
	return e.Err
}
