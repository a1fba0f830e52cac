package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// candidateNames are the manifest filenames FindManifestFile looks for,
// in preference order.
var candidateNames = []string{"inkstage.toml", "inkstage.yaml", "inkstage.yml"}

// FindManifestFile walks up from startDir looking for one of
// inkstage.toml/inkstage.yaml/inkstage.yml, stopping at the filesystem
// root. Returns an empty path, not an error, when none is found - an
// absent manifest is a normal, supported state.
func FindManifestFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolving path: %w", err)
	}
	for {
		for _, name := range candidateNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadFromFile parses the manifest at path, dispatching on its extension
// (.toml, or .yaml/.yml), and returns it alongside a ValidationResult for
// unknown-key detection. TOML unknown-key warnings come from BurntSushi's
// MetaData.Undecoded(); the YAML path instead decodes with KnownFields
// enabled, so an unrecognized key surfaces as a hard load error rather
// than a soft warning - yaml.v3 doesn't expose toml's "what wasn't
// consumed" metadata, only an all-or-nothing strict mode.
func LoadFromFile(path string) (*Manifest, *ValidationResult, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return loadTOML(path)
	case ".yaml", ".yml":
		m, err := loadYAML(path)
		if err != nil {
			return nil, nil, err
		}
		return m, Validate(m, nil), nil
	default:
		return nil, nil, fmt.Errorf("manifest: unrecognized extension %q for %s", ext, path)
	}
}

func loadTOML(path string) (*Manifest, *ValidationResult, error) {
	m := NewDefaults()
	md, err := toml.DecodeFile(path, m)
	if err != nil {
		return nil, nil, fmt.Errorf("manifest: loading %s: %w", path, err)
	}
	return m, Validate(m, &md), nil
}

func loadYAML(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: opening %s: %w", path, err)
	}
	defer f.Close()

	m := NewDefaults()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("manifest: loading %s: %w", path, err)
	}
	return m, nil
}
