package match

import (
	"strings"
	"unicode"
)

// vocabulary maps words authors use in cursor method names to the word of
// the primitive they stand for. Primitive words map to themselves.
var vocabulary = map[string]string{
	"dereference": "dereference",
	"deref":       "dereference",
	"value":       "dereference",
	"get":         "dereference",
	"current":     "dereference",
	"elem":        "dereference",
	"element":     "dereference",
	"item":        "dereference",
	"read":        "dereference",
	"peek":        "dereference",

	"increment": "increment",
	"inc":       "increment",
	"incr":      "increment",
	"next":      "increment",
	"forward":   "increment",
	"succ":      "increment",

	"decrement": "decrement",
	"dec":       "decrement",
	"decr":      "decrement",
	"prev":      "decrement",
	"previous":  "decrement",
	"back":      "decrement",
	"backward":  "decrement",
	"pred":      "decrement",

	"advance": "advance",
	"seek":    "advance",
	"skip":    "advance",
	"jump":    "advance",
	"offset":  "advance",

	"equal":  "equal",
	"equals": "equal",
	"eq":     "equal",
	"same":   "equal",

	"distance": "distance",
	"dist":     "distance",
	"diff":     "distance",
	"sub":      "distance",
	"minus":    "distance",
}

// fillers carry no meaning of their own in a method name.
var fillers = map[string]bool{
	"to": true, "by": true, "is": true, "at": true, "as": true, "one": true, "the": true,
}

// motions say that the cursor moves without saying where. Alone they mean a
// move by an offset; next to a direction they are dropped.
var motions = map[string]bool{
	"move": true, "go": true, "step": true,
}

// TokenizeIdent splits an identifier into lowercase words.
//   - "DistanceTo" -> [distance to]
//   - "MoveNext" -> [move next]
//   - "XMLCursor" -> [xml cursor]
//   - "equal_to" -> [equal to]
func TokenizeIdent(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

// CanonicalTokens returns the words of s in the primitive vocabulary, with
// fillers dropped: "MoveNext" -> [increment], "IsEqualTo" -> [equal],
// "MoveBy" -> [advance]. Unknown words are kept as they are.
func CanonicalTokens(s string) []string {
	var (
		out    []string
		moving bool
	)

	for _, w := range TokenizeIdent(s) {
		switch {
		case fillers[w]:
		case motions[w]:
			moving = true
		default:
			if c, ok := vocabulary[w]; ok {
				w = c
			}

			out = append(out, w)
		}
	}

	if len(out) == 0 && moving {
		out = append(out, "advance")
	}

	return out
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports whether runes[i] begins a new word: a lower-to-upper
// transition ("distanceTo") or the last capital of an acronym followed by
// a lowercase letter ("XMLCursor").
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
