// Package plan provides the resolution pipeline that produces a final
// ResolvedCursorPlan consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze packages → type graph
//  2. Load YAML or flags → validate
//  3. For each configured cursor type:
//     - Detect primitives and report near misses
//     - Reject types without Dereference or a forward step
//     - Resolve element and offset types, derive the category
//     - Pick exactly one strategy per derived operation, in fixed priority
//  4. Emit diagnostics (missing contracts, conflicts, category shortfalls)
package plan
