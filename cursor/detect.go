package cursor

// Categorized is implemented by every cursor type cursor-generator has run
// over. The generated Category is a constant and ignores its receiver.
type Categorized interface {
	Category() Category
}

// Detect reports which primitives *V provides, given the element type T and
// offset type D. The check is a set of interface assertions on a nil *V and a
// zero V: no method is called and no reflection is used. The result is fixed
// for a given instantiation.
//
// Increment, Decrement and Advance count only when declared on the pointer
// receiver. Signatures must match exactly: an Advance whose parameter is a
// different signed type than D, or an EqualTo returning a named bool type,
// is not reported here even though cursor-generator accepts both. Use
// CategoryOf for the category of a generated cursor.
func Detect[V, T any, D Offset]() Capability {
	var (
		p   any = (*V)(nil)
		val V
		v   any = val
	)

	var caps Capability
	if _, ok := p.(Dereferencer[T]); ok {
		caps |= CapDereference
	}

	if pointerOnly[Incrementer](p, v) {
		caps |= CapIncrement
	}

	if pointerOnly[Decrementer](p, v) {
		caps |= CapDecrement
	}

	if pointerOnly[Advancer[D]](p, v) {
		caps |= CapAdvance
	}

	if _, ok := p.(EqualityComparer[V]); ok {
		caps |= CapEqualTo
	}

	if _, ok := p.(DistanceMeasurer[V, D]); ok {
		caps |= CapDistanceTo
	}

	return caps
}

// pointerOnly reports whether I is in the method set of *V but not of V.
func pointerOnly[I any](p, v any) bool {
	if _, ok := p.(I); !ok {
		return false
	}

	_, onValue := v.(I)

	return !onValue
}

// CategoryOf returns the category of V. A generated Category method is
// authoritative; otherwise the category is derived from Detect[V, T, D]().
func CategoryOf[V, T any, D Offset]() Category {
	var v V
	if c, ok := any(v).(Categorized); ok {
		return c.Category()
	}

	return Detect[V, T, D]().Category()
}
