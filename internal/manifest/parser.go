package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultManifest []byte

// ErrInvalid is wrapped by Load when a manifest fails schema validation.
var ErrInvalid = errors.New("invalid manifest")

// Parse decodes manifest YAML without schema validation.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Load reads, validates, and parses the manifest at path.
// An empty path selects the embedded default manifest.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Default()
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Default returns the embedded manifest.
func Default() (*Manifest, error) {
	m, err := load(defaultManifest)
	if err != nil {
		return nil, fmt.Errorf("built-in manifest: %w", err)
	}
	return m, nil
}

func load(data []byte) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, result.Summary())
	}
	return Parse(data)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}

// Summary joins the issues of an invalid result into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return printer.Sprintf("%d issue(s): %s", len(r.Issues), strings.Join(parts, "; "))
}
