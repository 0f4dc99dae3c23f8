package cursor_test

import (
	"cmp"

	"cursor-generator/cursor"
)

// The cursors below carry the methods cursor-generator emits for their
// primitives, written out by hand so the runtime package can be tested on
// its own.

// sliceCursor: Dereference, Advance, DistanceTo => random access.
type sliceCursor struct {
	s []int
	i int
}

func (c sliceCursor) Dereference() int             { return c.s[c.i] }
func (c *sliceCursor) Advance(n int)               { c.i += n }
func (c sliceCursor) DistanceTo(o sliceCursor) int { return o.i - c.i }
func (sliceCursor) Category() cursor.Category      { return cursor.CategoryRandomAccess }
func (c sliceCursor) Get() int                     { return c.Dereference() }
func (c *sliceCursor) Skip(n int) *sliceCursor     { c.Advance(n); return c }
func (c sliceCursor) Add(n int) sliceCursor        { c.Skip(n); return c }
func (c sliceCursor) Sub(n int) sliceCursor        { return c.Add(-n) }
func (c *sliceCursor) Rewind(n int) *sliceCursor   { *c = c.Sub(n); return c }
func (c sliceCursor) At(n int) int                 { return c.Add(n).Get() }
func (c *sliceCursor) Next() *sliceCursor          { return c.Skip(1) }
func (c *sliceCursor) PostNext() sliceCursor       { saved := *c; c.Next(); return saved }
func (c *sliceCursor) Prev() *sliceCursor          { return c.Rewind(1) }
func (c *sliceCursor) PostPrev() sliceCursor       { saved := *c; c.Prev(); return saved }
func (c sliceCursor) Diff(o sliceCursor) int       { return o.DistanceTo(c) }
func (c sliceCursor) Equal(o sliceCursor) bool     { return c.DistanceTo(o) == 0 }
func (c sliceCursor) Compare(o sliceCursor) int    { return cmp.Compare(c.Diff(o), 0) }
func (c sliceCursor) Less(o sliceCursor) bool      { return c.Diff(o) < 0 }

var _ cursor.RandomAccess[sliceCursor, int, int] = (*sliceCursor)(nil)

func span(s []int) (first, last sliceCursor) {
	return sliceCursor{s: s}, sliceCursor{s: s, i: len(s)}
}

// stepCursor: Dereference, Increment, Decrement, EqualTo => bidirectional.
type stepCursor struct {
	s []int
	i int
}

func (c stepCursor) Dereference() int          { return c.s[c.i] }
func (c *stepCursor) Increment()               { c.i++ }
func (c *stepCursor) Decrement()               { c.i-- }
func (c stepCursor) EqualTo(o stepCursor) bool { return c.i == o.i }
func (stepCursor) Category() cursor.Category   { return cursor.CategoryBidirectional }
func (c stepCursor) Get() int                  { return c.Dereference() }
func (c *stepCursor) Next() *stepCursor        { c.Increment(); return c }
func (c *stepCursor) PostNext() stepCursor     { saved := *c; c.Next(); return saved }
func (c *stepCursor) Prev() *stepCursor        { c.Decrement(); return c }
func (c *stepCursor) PostPrev() stepCursor     { saved := *c; c.Prev(); return saved }
func (c stepCursor) Equal(o stepCursor) bool   { return c.EqualTo(o) }

var _ cursor.Bidirectional[stepCursor, int] = (*stepCursor)(nil)

// countCursor: Dereference, Increment => input.
type countCursor struct {
	n int
}

func (c countCursor) Dereference() int        { return c.n }
func (c *countCursor) Increment()             { c.n++ }
func (countCursor) Category() cursor.Category { return cursor.CategoryInput }
func (c countCursor) Get() int                { return c.Dereference() }
func (c *countCursor) Next() *countCursor     { c.Increment(); return c }
func (c *countCursor) PostNext() countCursor  { saved := *c; c.Next(); return saved }

var _ cursor.Input[countCursor, int] = (*countCursor)(nil)

// valueIncrement declares Increment on the value receiver, which cannot
// move the cursor.
type valueIncrement struct{ n int }

func (c valueIncrement) Dereference() int { return c.n }
func (c valueIncrement) Increment()       {}

// wideCursor steps with an int64 Advance while its offset type is int, as
// cursor-generator allows.
type wideCursor struct{ pos int }

func (c wideCursor) Dereference() int          { return c.pos }
func (c *wideCursor) Advance(n int64)          { c.pos += int(n) }
func (c wideCursor) EqualTo(o wideCursor) bool { return c.pos == o.pos }

func (wideCursor) Category() cursor.Category { return cursor.CategoryForward }
