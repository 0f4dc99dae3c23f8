// Package diagnostic provides structured errors, warnings, and
// "why this was derived" explanations for the cursor generator.
//
// Key capabilities:
//   - Missing mandatory primitive errors with suggested method names
//   - Near-miss warnings for primitives with the wrong signature
//   - Category requirement failures
//   - Explanation of the fallback chosen for every derived operation
package diagnostic
