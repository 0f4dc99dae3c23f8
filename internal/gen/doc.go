// Package gen provides deterministic Go code generation for cursor
// adaptation methods.
//
// Generation approach uses text/template + go/format for readable Go code
// that is committed next to the variant type it extends.
//
// Codegen patterns:
//   - Constant category method
//   - Dereference forwarding and pointer surrogates
//   - Offset arithmetic built on Advance (Skip, Add, Sub, Rewind, At)
//   - Stepping with fallback (Increment or Skip(1), Decrement or Rewind(1))
//   - Equality and ordering built on EqualTo and DistanceTo
//   - Element/offset type aliases and interface compliance assertions
package gen
