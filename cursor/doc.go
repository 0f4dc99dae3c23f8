// Package cursor holds the runtime side of cursor adaptation.
//
// A cursor author writes a small set of primitive methods on a value type
// (Dereference, Increment, Decrement, Advance, EqualTo, DistanceTo) and runs
// cursor-generator over it. The generator synthesizes the full cursor protocol
// as ordinary methods; this package provides the vocabulary shared by the
// generator and by code consuming generated cursors:
//
//   - Capability: the set of primitives a type provides, and the traversal
//     Category derived from it
//   - primitive interfaces (Dereferencer, Incrementer, ...) and the protocol
//     interfaces generated cursors satisfy (Input, Forward, Bidirectional,
//     RandomAccess)
//   - Detect: reflection-free capability detection for a concrete type
//   - generic algorithms (All, Distance, Advance, LowerBound, ...) that pick a
//     strategy from the cursor's category
//
// Example:
//
//	//go:generate go run cursor-generator/cmd/cursor-generator gen -c cursor.yaml
//
//	type cityCursor struct{ pos int }
//
//	func (c cityCursor) Dereference() City             { return City(c.pos) }
//	func (c *cityCursor) Advance(n int)                { c.pos += n }
//	func (c cityCursor) DistanceTo(o cityCursor) int   { return o.pos - c.pos }
//
// yields a random-access cursor with Next, Prev, Add, Sub, At, Diff, Compare,
// Equal and friends.
package cursor
