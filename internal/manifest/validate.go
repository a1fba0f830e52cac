package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ValidationSeverity indicates whether a validation issue is an error or
// a warning.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
)

// ValidationIssue is a single validation finding against a dotted field
// path.
type ValidationIssue struct {
	Severity ValidationSeverity
	Field    string
	Message  string
}

// ValidationResult holds every issue found while validating a Manifest.
type ValidationResult struct {
	Issues []ValidationIssue
}

func (vr *ValidationResult) HasErrors() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (vr *ValidationResult) Errors() []ValidationIssue {
	var errs []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// Validate checks m for correctness: malformed render geometry, and (for
// a TOML load) unrecognized keys reported via meta.Undecoded(). meta is
// nil for a YAML-loaded manifest, whose unknown keys already failed to
// load per LoadFromFile's KnownFields(true) strictness.
func Validate(m *Manifest, meta *toml.MetaData) *ValidationResult {
	vr := &ValidationResult{}
	if m == nil {
		addError(vr, "", "manifest is nil")
		return vr
	}

	if m.Render.Width < 0 {
		addError(vr, "render.width", "must not be negative")
	}
	if m.Render.Height < 0 {
		addError(vr, "render.height", "must not be negative")
	}
	if m.Render.Workers < 0 {
		addError(vr, "render.workers", "must not be negative")
	}

	for i, dir := range m.Fonts.Dirs {
		if _, err := os.Stat(dir); err != nil {
			addWarning(vr, fmt.Sprintf("fonts.dirs[%d]", i), fmt.Sprintf("directory %q does not exist", dir))
		}
	}
	for i, dir := range m.Code.SyntaxDirs {
		if _, err := os.Stat(dir); err != nil {
			addWarning(vr, fmt.Sprintf("code.syntax_dirs[%d]", i), fmt.Sprintf("directory %q does not exist", dir))
		}
	}
	for i, dir := range m.Code.ThemeDirs {
		if _, err := os.Stat(dir); err != nil {
			addWarning(vr, fmt.Sprintf("code.theme_dirs[%d]", i), fmt.Sprintf("directory %q does not exist", dir))
		}
	}

	if meta != nil {
		for _, key := range meta.Undecoded() {
			addWarning(vr, strings.Join(key, "."), "unknown configuration key")
		}
	}

	return vr
}

func addError(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{Severity: SeverityError, Field: field, Message: message})
}

func addWarning(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{Severity: SeverityWarning, Field: field, Message: message})
}
