package cursor

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is the traversal category of a cursor. Categories are ordered:
// every category includes the ones below it.
type Category int

const (
	CategoryUnknown       Category = iota // unknown
	CategoryInput                         // input
	CategoryForward                       // forward
	CategoryBidirectional                 // bidirectional
	CategoryRandomAccess                  // random_access

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

// IsValid returns true if c is one of the four traversal categories.
func (c Category) IsValid() bool {
	return c > CategoryUnknown && int(c) < CategoryTotal
}

// Includes reports whether a cursor of category c can be used where other is
// required, e.g. a random-access cursor is also a forward cursor.
func (c Category) Includes(other Category) bool {
	return c.IsValid() && other.IsValid() && c >= other
}

// ParseCategory parses a category name as printed by String. Dashes and
// spaces are accepted in place of underscores.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	for c := CategoryInput; int(c) < CategoryTotal; c++ {
		if c.String() == norm {
			return c, nil
		}
	}

	return CategoryUnknown, fmt.Errorf("unknown cursor category %q", s)
}
