// Package cursortest checks the laws every generated cursor must obey.
//
// The checks are property tests: positions and offsets are drawn with rapid
// from a caller-supplied range, and each law runs as its own subtest.
package cursortest

import (
	"testing"

	"pgregory.net/rapid"

	"cursor-generator/cursor"
)

// RandomAccessLaws checks the offset arithmetic and ordering of a
// random-access cursor over [first, first+n). n must be positive.
func RandomAccessLaws[T comparable, D cursor.Offset, V any, P cursor.RandomAccessPtr[V, T, D]](t *testing.T, first V, n D) {
	t.Helper()

	size := int(n)
	if size <= 0 {
		t.Fatalf("cursortest: range length %d, want > 0", size)
	}

	at := func(rt *rapid.T, label string) V {
		return P(&first).Add(D(rapid.IntRange(0, size).Draw(rt, label)))
	}
	offset := func(rt *rapid.T, label string) D {
		return D(rapid.IntRange(-size, size).Draw(rt, label))
	}

	t.Run("AddSubRoundTrip", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			c, k := at(rt, "c"), offset(rt, "k")

			moved := P(&c).Add(k)
			back := P(&moved).Sub(k)
			if !P(&back).Equal(c) {
				rt.Fatalf("(c + %d) - %d != c", k, k)
			}

			if got := P(&moved).Diff(c); got != k {
				rt.Fatalf("(c + %d) - c = %d", k, got)
			}
		})
	})

	t.Run("SkipMatchesAdd", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			c, k := at(rt, "c"), offset(rt, "k")

			moved := c
			P(&moved).Skip(k)
			if !P(&moved).Equal(P(&c).Add(k)) {
				rt.Fatalf("Skip(%d) and Add(%d) disagree", k, k)
			}

			P(&moved).Rewind(k)
			if !P(&moved).Equal(c) {
				rt.Fatalf("Rewind(%d) does not undo Skip(%d)", k, k)
			}
		})
	})

	t.Run("PostIncrement", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			c := at(rt, "c")
			orig := c

			saved := P(&c).PostNext()
			if !P(&saved).Equal(orig) {
				rt.Fatalf("PostNext returned a moved cursor")
			}

			if d := P(&c).Diff(orig); d != 1 {
				rt.Fatalf("PostNext moved by %d", d)
			}

			saved = P(&c).PostPrev()
			if P(&saved).Diff(orig) != 1 || !P(&c).Equal(orig) {
				rt.Fatalf("PostPrev did not undo PostNext")
			}
		})
	})

	t.Run("DiffAntisymmetric", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a, b := at(rt, "a"), at(rt, "b")

			if P(&a).Diff(b) != -P(&b).Diff(a) {
				rt.Fatalf("a-b = %d, b-a = %d", P(&a).Diff(b), P(&b).Diff(a))
			}
		})
	})

	t.Run("EqualIffZeroDistance", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a, b := at(rt, "a"), at(rt, "b")

			if P(&a).Equal(b) != (P(&a).Diff(b) == 0) {
				rt.Fatalf("Equal = %v but Diff = %d", P(&a).Equal(b), P(&a).Diff(b))
			}
		})
	})

	t.Run("AtIsAddGet", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			i := rapid.IntRange(0, size-1).Draw(rt, "i")
			k := rapid.IntRange(-i, size-1-i).Draw(rt, "k")
			c := P(&first).Add(D(i))

			moved := P(&c).Add(D(k))
			if P(&c).At(D(k)) != P(&moved).Get() {
				rt.Fatalf("c[%d] != *(c + %d)", k, k)
			}

			if P(&c).At(D(k)) != P(&first).At(D(i+k)) {
				rt.Fatalf("c[%d] != first[%d]", k, i+k)
			}
		})
	})

	t.Run("CompareConsistent", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a, b := at(rt, "a"), at(rt, "b")
			less, greater, equal := P(&a).Less(b), P(&b).Less(a), P(&a).Equal(b)

			switch r := P(&a).Compare(b); r {
			case -1:
				if !less || greater || equal {
					rt.Fatalf("Compare = -1 but Less/Equal disagree")
				}
			case 0:
				if less || greater || !equal {
					rt.Fatalf("Compare = 0 but Less/Equal disagree")
				}
			case 1:
				if less || !greater || equal {
					rt.Fatalf("Compare = 1 but Less/Equal disagree")
				}
			default:
				rt.Fatalf("Compare = %d", r)
			}
		})
	})
}

// BidirectionalLaws checks single steps of a bidirectional cursor over
// [first, first+n). n must be positive.
func BidirectionalLaws[T comparable, V any, P cursor.BidirectionalPtr[V, T]](t *testing.T, first V, n int) {
	t.Helper()

	if n <= 0 {
		t.Fatalf("cursortest: range length %d, want > 0", n)
	}

	// at returns the cursor i steps past first, for i in [0, n).
	at := func(rt *rapid.T, label string) (V, int) {
		i := rapid.IntRange(0, n-1).Draw(rt, label)

		c := first
		for range i {
			P(&c).Next()
		}

		return c, i
	}

	t.Run("NextPrevRoundTrip", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			c, i := at(rt, "c")
			orig := c
			want := P(&c).Get()

			P(P(&c).Next()).Prev()
			if !P(&c).Equal(orig) || P(&c).Get() != want {
				rt.Fatalf("Prev does not undo Next at %d", i)
			}
		})
	})

	t.Run("PostStepsReturnPreviousPosition", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			c, i := at(rt, "c")
			orig := c

			saved := P(&c).PostNext()
			if !P(&saved).Equal(orig) || P(&c).Equal(orig) {
				rt.Fatalf("PostNext at %d", i)
			}

			stepped := c
			saved = P(&c).PostPrev()
			if !P(&saved).Equal(stepped) || !P(&c).Equal(orig) {
				rt.Fatalf("PostPrev at %d", i)
			}
		})
	})

	t.Run("EqualReflexiveSymmetric", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			a, i := at(rt, "a")
			b, j := at(rt, "b")

			if !P(&a).Equal(a) {
				rt.Fatalf("cursor %d not equal to itself", i)
			}

			if P(&a).Equal(b) != P(&b).Equal(a) {
				rt.Fatalf("Equal(%d, %d) is not symmetric", i, j)
			}

			if P(&a).Equal(b) != (i == j) {
				rt.Fatalf("Equal(%d, %d) = %v", i, j, P(&a).Equal(b))
			}
		})
	})
}
