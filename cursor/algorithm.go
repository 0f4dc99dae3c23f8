package cursor

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrNotReversible is returned by Advance for a negative offset on a cursor
// without a backward step.
var ErrNotReversible = errors.New("cursor cannot move backward")

// All returns the elements in [first, last).
//
// Type arguments after T are inferred: cursor.All[City](begin, end).
func All[T, V any, P ForwardPtr[V, T]](first, last V) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := first; !P(&c).Equal(last); P(&c).Next() {
			if !yield(P(&c).Get()) {
				return
			}
		}
	}
}

// Backward returns the elements in [first, last) from last to first.
func Backward[T, V any, P BidirectionalPtr[V, T]](first, last V) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := last
		for !P(&c).Equal(first) {
			P(&c).Prev()

			if !yield(P(&c).Get()) {
				return
			}
		}
	}
}

// Take returns at most n elements starting at c. It never steps past the
// last element it yields, so it is safe on single-pass input cursors.
func Take[T, V any, P InputPtr[V, T]](c V, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := c
		for i := range n {
			if i > 0 {
				P(&cur).Next()
			}

			if !yield(P(&cur).Get()) {
				return
			}
		}
	}
}

// Collect returns the elements in [first, last) as a slice.
func Collect[T, V any, P ForwardPtr[V, T]](first, last V) []T {
	return slices.Collect(All[T, V, P](first, last))
}

// Distance returns the number of steps from first to last. Random-access
// cursors answer in constant time when D is their own offset type; with any
// other D, or for weaker categories, the range is walked. D is not inferred:
// pass the cursor's offset type, as in cursor.Distance[City, int](b, e).
func Distance[T any, D Offset, V any, P ForwardPtr[V, T]](first, last V) D {
	if P(&first).Category() == CategoryRandomAccess {
		if o, ok := any(&last).(Ordered[V, D]); ok {
			return o.Diff(first)
		}
	}

	var n D
	for c := first; !P(&c).Equal(last); P(&c).Next() {
		n++
	}

	return n
}

// Advance moves c by n positions. Random-access cursors move in constant
// time when D is their own offset type; otherwise c steps one position at a
// time. An untyped constant n makes D int. A negative n requires a backward
// step.
func Advance[T any, D Offset, V any, P InputPtr[V, T]](c P, n D) error {
	if c.Category() == CategoryRandomAccess {
		if o, ok := any(c).(Offsettable[V, T, D]); ok {
			o.Skip(n)
			return nil
		}
	}

	if n < 0 {
		r, ok := any(c).(Reversible[V])
		if !ok {
			return fmt.Errorf("advance by %d on %s cursor: %w", n, c.Category(), ErrNotReversible)
		}

		for ; n < 0; n++ {
			r.Prev()
		}

		return nil
	}

	for ; n > 0; n-- {
		c.Next()
	}

	return nil
}

// Find returns the first cursor in [first, last) whose element equals want,
// or last.
func Find[T comparable, V any, P ForwardPtr[V, T]](first, last V, want T) V {
	c := first
	for ; !P(&c).Equal(last); P(&c).Next() {
		if P(&c).Get() == want {
			break
		}
	}

	return c
}

// LowerBound returns the first cursor in the sorted range [first, last)
// whose element is not less than target, or last. It performs O(log n)
// comparisons.
func LowerBound[T cmp.Ordered, D Offset, V any, P RandomAccessPtr[V, T, D]](first, last V, target T) V {
	count := P(&last).Diff(first)
	for count > 0 {
		step := count / 2

		mid := P(&first).Add(step)
		if P(&mid).Get() < target {
			first = P(&mid).Add(1)
			count -= step + 1
		} else {
			count = step
		}
	}

	return first
}
