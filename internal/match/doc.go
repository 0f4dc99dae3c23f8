// Package match ranks method names against the cursor primitive an author
// probably meant when a mandatory one is missing, e.g. "Deref" or "MoveNext".
//
// Names are split into words, the words are mapped onto the primitive
// vocabulary, and the word sequences are compared with a weighted edit
// distance in which replacing a word costs its spelling distance.
//
// Key functions:
//   - CanonicalTokens: words of a name in the primitive vocabulary
//   - TokenSimilarity: word-level similarity of two names
//   - Suggest: ranks candidate names against a wanted name
package match
