// Package config defines the YAML configuration read by cursor-generator.
//
// A configuration file names the package to analyze, the output file and
// the cursor variant types to adapt:
//
//	version: "1"
//	package: .
//	output: cursor_gen.go
//	options:
//	  comments: true
//	  assertions: true
//	  metadata: true
//	cursors:
//	  - type: cityCursor
//	    value_type: City
//	    difference_type: int
//	    require: random_access
//
// value_type and difference_type declare the element and offset types when
// they cannot be read from the primitives. require fails generation when the
// detected category is weaker than requested.
//
// The same structure can be built from command line flags with NewFile.
package config
