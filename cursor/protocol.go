package cursor

// The interfaces below describe the methods cursor-generator emits. They are
// implemented by *V, where V is the variant type, T the result of Get and D
// the offset type.

// Input is the floor of the protocol: read and step forward.
type Input[V, T any] interface {
	Category() Category
	Get() T
	Next() *V
	PostNext() V
}

// Comparable is implemented when equality is available.
type Comparable[V any] interface {
	Equal(other V) bool
}

// Reversible is implemented when a backward step is available.
type Reversible[V any] interface {
	Prev() *V
	PostPrev() V
}

// Offsettable is implemented when the variant provides Advance.
type Offsettable[V, T any, D Offset] interface {
	Skip(n D) *V
	Rewind(n D) *V
	Add(n D) V
	Sub(n D) V
	At(n D) T
}

// Ordered is implemented when the variant provides DistanceTo.
type Ordered[V any, D Offset] interface {
	Diff(other V) D
	Compare(other V) int
	Less(other V) bool
}

// Forward cursors can be compared and traversed more than once.
type Forward[V, T any] interface {
	Input[V, T]
	Comparable[V]
}

// Bidirectional cursors can also step backward.
type Bidirectional[V, T any] interface {
	Forward[V, T]
	Reversible[V]
}

// RandomAccess cursors support constant-time offset arithmetic and ordering.
type RandomAccess[V, T any, D Offset] interface {
	Bidirectional[V, T]
	Offsettable[V, T, D]
	Ordered[V, D]
}

// InputPtr constrains type parameters to pointers of input cursors.
type InputPtr[V, T any] interface {
	*V
	Input[V, T]
}

// ForwardPtr constrains type parameters to pointers of forward cursors.
type ForwardPtr[V, T any] interface {
	*V
	Forward[V, T]
}

// BidirectionalPtr constrains type parameters to pointers of bidirectional cursors.
type BidirectionalPtr[V, T any] interface {
	*V
	Bidirectional[V, T]
}

// RandomAccessPtr constrains type parameters to pointers of random-access cursors.
type RandomAccessPtr[V, T any, D Offset] interface {
	*V
	RandomAccess[V, T, D]
}
