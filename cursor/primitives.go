package cursor

import "golang.org/x/exp/constraints"

// Offset is the constraint on offset (difference) types. Offsets must be
// signed so that backward moves can be expressed by negation.
type Offset interface {
	constraints.Signed
}

// Dereferencer is implemented by cursors that can read the current element.
type Dereferencer[T any] interface {
	Dereference() T
}

// Incrementer is implemented by cursors that can step forward by one.
type Incrementer interface {
	Increment()
}

// Decrementer is implemented by cursors that can step backward by one.
type Decrementer interface {
	Decrement()
}

// Advancer is implemented by cursors that can move by an arbitrary offset.
type Advancer[D Offset] interface {
	Advance(n D)
}

// EqualityComparer is implemented by cursors that can compare positions.
type EqualityComparer[V any] interface {
	EqualTo(other V) bool
}

// DistanceMeasurer is implemented by cursors that can measure the signed
// distance to another cursor. DistanceTo must be antisymmetric and return
// zero exactly when both cursors are at the same position; the generated
// Equal relies on it when EqualTo is absent.
type DistanceMeasurer[V any, D Offset] interface {
	DistanceTo(other V) D
}
