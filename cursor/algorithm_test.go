package cursor_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursor-generator/cursor"
)

var primes = []int{2, 3, 5, 7, 11, 13, 17, 19}

func steps(s []int) (first, last stepCursor) {
	return stepCursor{s: s}, stepCursor{s: s, i: len(s)}
}

func TestAll(t *testing.T) {
	first, last := span(primes)
	assert.Equal(t, primes, slices.Collect(cursor.All[int](first, last)))

	sf, sl := steps(primes)
	assert.Equal(t, primes, cursor.Collect[int](sf, sl))

	assert.Empty(t, cursor.Collect[int](first, first))
}

func TestAll_StopsEarly(t *testing.T) {
	first, last := span(primes)

	var got []int
	for v := range cursor.All[int](first, last) {
		if v > 5 {
			break
		}

		got = append(got, v)
	}

	assert.Equal(t, []int{2, 3, 5}, got)
}

func TestBackward(t *testing.T) {
	want := slices.Clone(primes)
	slices.Reverse(want)

	first, last := span(primes)
	assert.Equal(t, want, slices.Collect(cursor.Backward[int](first, last)))

	sf, sl := steps(primes)
	assert.Equal(t, want, slices.Collect(cursor.Backward[int](sf, sl)))
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(cursor.Take[int](countCursor{}, 4)))
	assert.Empty(t, slices.Collect(cursor.Take[int](countCursor{}, 0)))

	// The source cursor is copied, not moved.
	c := countCursor{n: 10}
	_ = slices.Collect(cursor.Take[int](c, 3))
	assert.Equal(t, 10, c.Get())
}

func TestDistance(t *testing.T) {
	first, last := span(primes)
	assert.Equal(t, len(primes), cursor.Distance[int, int](first, last))

	sf, sl := steps(primes)
	assert.Equal(t, int64(len(primes)), cursor.Distance[int, int64](sf, sl))
}

func TestAdvance(t *testing.T) {
	c, _ := span(primes)
	require.NoError(t, cursor.Advance[int](&c, 5))
	assert.Equal(t, 13, c.Get())
	require.NoError(t, cursor.Advance[int](&c, -3))
	assert.Equal(t, 5, c.Get())

	s, _ := steps(primes)
	require.NoError(t, cursor.Advance[int](&s, 4))
	assert.Equal(t, 11, s.Get())
	require.NoError(t, cursor.Advance[int](&s, -4))
	assert.Equal(t, 2, s.Get())

	n := countCursor{}
	require.NoError(t, cursor.Advance[int](&n, 3))
	assert.Equal(t, 3, n.Get())

	err := cursor.Advance[int](&n, -1)
	assert.ErrorIs(t, err, cursor.ErrNotReversible)
	assert.Contains(t, err.Error(), "input")
}

func TestDistanceAndAdvance_ForeignOffsetWalks(t *testing.T) {
	// sliceCursor's offset is int; an int64 D misses the constant-time path
	// but still gives the same answers.
	first, last := span(primes)
	assert.Equal(t, int64(len(primes)), cursor.Distance[int, int64](first, last))

	c := first
	require.NoError(t, cursor.Advance[int](&c, int64(6)))
	assert.Equal(t, 17, c.Get())
	require.NoError(t, cursor.Advance[int](&c, int8(-2)))
	assert.Equal(t, 11, c.Get())
}

func TestFind(t *testing.T) {
	first, last := span(primes)

	found := cursor.Find[int](first, last, 11)
	assert.Equal(t, 4, found.Diff(first))

	missing := cursor.Find[int](first, last, 4)
	assert.True(t, missing.Equal(last))
}

func TestLowerBound(t *testing.T) {
	first, last := span(primes)

	tests := []struct {
		target int
		want   int
	}{
		{0, 0},
		{2, 0},
		{4, 2},
		{7, 3},
		{19, 7},
		{20, 8},
	}

	for _, tt := range tests {
		got := cursor.LowerBound[int, int](first, last, tt.target)
		assert.Equal(t, tt.want, got.Diff(first), "target %d", tt.target)
	}

	assert.True(t, cursor.LowerBound[int, int](first, first, 1).Equal(first))
}
