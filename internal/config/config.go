// Package config loads the CLI's configuration surface (spec.md §6): a
// path-mapper JSON file, and the supplemental multi-root YAML batch config
// (SPEC_FULL.md §11).
package config

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/pathmap"
)

// LoadPathMapper reads a flat JSON object {sourcePath: mappedPrefix} from
// path and builds a pathmap.Mapper from it.
func LoadPathMapper(path string) (*pathmap.Mapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errkind.IoError{Err: err}
	}
	m := pathmap.New()
	if err := m.LoadFromJSON(data); err != nil {
		return nil, errkind.ParseError{Reason: err.Error()}
	}
	return m, nil
}

// Root is one entry of a batch config: an input file/crate plus its own
// output directory and optional path-mapper file, so a single invocation
// can translate several independent crates.
type Root struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	PathMapper string `yaml:"pathMapper,omitempty"`
	CrateName  string `yaml:"crateName,omitempty"`
	// Mode selects "generate" (default, write files) or "check" (compare
	// against Output without writing) for this root.
	Mode string `yaml:"mode,omitempty"`
	// Header selects the header banner for this root: "none", "standard"
	// (default), or custom banner text.
	Header string `yaml:"header,omitempty"`
}

// Batch is the top-level shape of a `typebind.yaml` multi-root config.
type Batch struct {
	Roots []Root `yaml:"roots"`
}

// LoadBatch parses a typebind.yaml batch config.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errkind.IoError{Err: err}
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, errkind.ParseError{Reason: err.Error()}
	}
	return &b, nil
}

// DumpYAML renders any config value back to YAML text, for the CLI's
// `--format=yaml` debug dump (SPEC_FULL.md §11).
func DumpYAML(v interface{}) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// marshalJSON is a small helper kept for symmetry with LoadPathMapper's
// input format, used by DumpConfig's "json" format.
func marshalJSON(v interface{}) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	return string(out), err
}

// DumpConfig renders v as "yaml" or "json", for `typebind config --format`.
// Any other format string is an error rather than a silent fallback.
func DumpConfig(v interface{}, format string) (string, error) {
	switch format {
	case "json":
		return marshalJSON(v)
	case "yaml", "":
		return DumpYAML(v)
	default:
		return "", errkind.ParseError{Reason: "unknown dump format: " + format}
	}
}
