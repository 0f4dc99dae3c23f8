package config

import (
	"fmt"

	"cursor-generator/cursor"
)

// Defaults applied by Parse.
const (
	DefaultVersion = "1"
	DefaultPackage = "."
	DefaultOutput  = "cursor_gen.go"
)

// File represents the root of a cursor-generator configuration file.
type File struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// Package is the package pattern to analyze, relative to Dir.
	Package string `yaml:"package,omitempty"`

	// Output is the file name written into the package directory.
	Output string `yaml:"output,omitempty"`

	// Options toggles optional parts of the generated file.
	Options Options `yaml:"options,omitempty"`

	// Cursors lists the variant types to adapt.
	Cursors []CursorSpec `yaml:"cursors"`

	// Dir is the directory of the configuration file. It is not serialized.
	Dir string `yaml:"-"`
}

// Options toggles optional parts of the generated file. Unset options are enabled.
type Options struct {
	// Comments emits doc comments on derived methods.
	Comments *bool `yaml:"comments,omitempty"`

	// Assertions emits interface compliance assertions.
	Assertions *bool `yaml:"assertions,omitempty"`

	// Metadata emits element and offset type aliases.
	Metadata *bool `yaml:"metadata,omitempty"`
}

// CommentsEnabled reports whether doc comments are emitted.
func (o Options) CommentsEnabled() bool { return enabled(o.Comments) }

// AssertionsEnabled reports whether compliance assertions are emitted.
func (o Options) AssertionsEnabled() bool { return enabled(o.Assertions) }

// MetadataEnabled reports whether type aliases are emitted.
func (o Options) MetadataEnabled() bool { return enabled(o.Metadata) }

func enabled(b *bool) bool {
	return b == nil || *b
}

// Bool returns a pointer to b, for building Options in code.
func Bool(b bool) *bool {
	return &b
}

// CursorSpec configures one cursor variant type.
type CursorSpec struct {
	// Type is the name of the variant type in the analyzed package.
	Type string `yaml:"type"`

	// ValueType optionally declares the element type (e.g., "City").
	ValueType string `yaml:"value_type,omitempty"`

	// DifferenceType optionally declares the offset type (e.g., "int64").
	DifferenceType string `yaml:"difference_type,omitempty"`

	// Require optionally names the minimum acceptable category.
	Require string `yaml:"require,omitempty"`
}

// RequiredCategory parses Require. An empty value yields CategoryUnknown,
// which every valid cursor satisfies.
func (c CursorSpec) RequiredCategory() (cursor.Category, error) {
	if c.Require == "" {
		return cursor.CategoryUnknown, nil
	}

	cat, err := cursor.ParseCategory(c.Require)
	if err != nil {
		return cursor.CategoryUnknown, fmt.Errorf("cursor %s: %w", c.Type, err)
	}

	return cat, nil
}

// Cursor returns the CursorSpec for the named type, or nil.
func (f *File) Cursor(name string) *CursorSpec {
	for i := range f.Cursors {
		if f.Cursors[i].Type == name {
			return &f.Cursors[i]
		}
	}

	return nil
}

// TypeNames returns the configured type names in order.
func (f *File) TypeNames() []string {
	names := make([]string, len(f.Cursors))
	for i, c := range f.Cursors {
		names[i] = c.Type
	}

	return names
}
