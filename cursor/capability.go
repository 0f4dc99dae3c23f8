package cursor

import (
	"errors"
	"fmt"
	"strings"
)

// Capability is a set of primitive operations a cursor type provides.
// A single bit names one primitive; combined bits describe a type.
type Capability uint8

const (
	CapDereference Capability = 1 << iota // Dereference() T
	CapIncrement                          // Increment()
	CapDecrement                          // Decrement()
	CapAdvance                            // Advance(D)
	CapEqualTo                            // EqualTo(V) bool
	CapDistanceTo                         // DistanceTo(V) D

	CapAll  Capability = (1 << iota) - 1 // all primitives combined
	CapNone Capability = 0               // no primitives
)

var (
	// ErrNoDereference is returned by Validate when Dereference is missing.
	ErrNoDereference = errors.New("cursor must provide Dereference()")
	// ErrNoForwardStep is returned by Validate when neither Increment nor Advance is present.
	ErrNoForwardStep = errors.New("cursor must provide either Advance() or Increment()")
)

var capabilityNames = map[Capability]string{
	CapDereference: "dereference",
	CapIncrement:   "increment",
	CapDecrement:   "decrement",
	CapAdvance:     "advance",
	CapEqualTo:     "equal_to",
	CapDistanceTo:  "distance_to",
}

// Has returns true if every primitive in other is present in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// HasDereference reports whether Dereference is present.
func (c Capability) HasDereference() bool { return c.Has(CapDereference) }

// HasIncrement reports whether a pointer-receiver Increment is present.
func (c Capability) HasIncrement() bool { return c.Has(CapIncrement) }

// HasDecrement reports whether a pointer-receiver Decrement is present.
func (c Capability) HasDecrement() bool { return c.Has(CapDecrement) }

// HasAdvance reports whether a pointer-receiver Advance is present.
func (c Capability) HasAdvance() bool { return c.Has(CapAdvance) }

// HasEqualTo reports whether EqualTo is present.
func (c Capability) HasEqualTo() bool { return c.Has(CapEqualTo) }

// HasDistanceTo reports whether DistanceTo is present.
func (c Capability) HasDistanceTo() bool { return c.Has(CapDistanceTo) }

// CanStepForward reports whether a forward step can be derived.
func (c Capability) CanStepForward() bool {
	return c.HasIncrement() || c.HasAdvance()
}

// CanStepBackward reports whether a backward step can be derived.
func (c Capability) CanStepBackward() bool {
	return c.HasDecrement() || c.HasAdvance()
}

// CanCompare reports whether equality can be derived.
func (c Capability) CanCompare() bool {
	return c.HasEqualTo() || c.HasDistanceTo()
}

// IsRandomAccess reports whether offset arithmetic and ordering are both available.
func (c Capability) IsRandomAccess() bool {
	return c.HasAdvance() && c.HasDistanceTo()
}

// IsBidirectional reports whether the cursor qualifies as bidirectional.
func (c Capability) IsBidirectional() bool {
	return c.IsRandomAccess() || c.HasDecrement()
}

// Validate returns an error if the mandatory primitives are missing.
// Both missing contracts are reported when both are absent.
func (c Capability) Validate() error {
	var errs []error
	if !c.HasDereference() {
		errs = append(errs, ErrNoDereference)
	}

	if !c.CanStepForward() {
		errs = append(errs, ErrNoForwardStep)
	}

	return errors.Join(errs...)
}

// Category derives the traversal category. Types that fail Validate have
// CategoryUnknown.
func (c Capability) Category() Category {
	switch {
	case c.Validate() != nil:
		return CategoryUnknown
	case c.IsRandomAccess():
		return CategoryRandomAccess
	case c.IsBidirectional():
		return CategoryBidirectional
	case c.CanCompare():
		return CategoryForward
	default:
		return CategoryInput
	}
}

// Missing returns the cheapest set of primitives that, added to c, would
// lift the category to at least target.
func (c Capability) Missing(target Category) Capability {
	var need Capability

	if !c.HasDereference() {
		need |= CapDereference
	}

	if !c.CanStepForward() {
		need |= CapIncrement
	}

	switch target {
	case CategoryForward:
		if !c.CanCompare() {
			need |= CapEqualTo
		}
	case CategoryBidirectional:
		if !c.IsBidirectional() {
			need |= CapDecrement
		}
	case CategoryRandomAccess:
		if !c.HasAdvance() {
			need |= CapAdvance
		}

		if !c.HasDistanceTo() {
			need |= CapDistanceTo
		}
		// Advance replaces Increment as the forward step.
		need &^= CapIncrement
	}

	return need
}

// Names returns the primitive names in c in bit order.
func (c Capability) Names() []string {
	var names []string
	for bit := Capability(1); bit&CapAll != 0; bit <<= 1 {
		if c&bit != 0 {
			names = append(names, capabilityNames[bit])
		}
	}

	return names
}

// String returns the primitive names joined by "|", or "none".
func (c Capability) String() string {
	if c&CapAll == CapNone {
		return "none"
	}

	return strings.Join(c.Names(), "|")
}

// ParseCapability parses a single primitive name ("advance", "distance_to")
// or the matching Go method name ("Advance", "DistanceTo").
func ParseCapability(s string) (Capability, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for bit, name := range capabilityNames {
		if strings.ReplaceAll(name, "_", "") == norm {
			return bit, nil
		}
	}

	return CapNone, fmt.Errorf("unknown cursor capability %q", s)
}
