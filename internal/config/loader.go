package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// NewFile builds a configuration from command line values, with one
// cursor entry per type name.
func NewFile(pkg string, typeNames []string, valueType, differenceType, require string) *File {
	f := &File{Package: pkg}
	for _, name := range typeNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		f.Cursors = append(f.Cursors, CursorSpec{
			Type:           name,
			ValueType:      valueType,
			DifferenceType: differenceType,
			Require:        require,
		})
	}

	applyDefaults(f)

	return f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	if f.Package == "" {
		f.Package = DefaultPackage
	}

	if f.Output == "" {
		f.Output = DefaultOutput
	}

	for i := range f.Cursors {
		c := &f.Cursors[i]
		c.Type = strings.TrimSpace(c.Type)
		c.Require = strings.TrimSpace(c.Require)
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
