package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cursor-generator/cursor"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, d|adv|dst, cursor.Detect[sliceCursor, int, int]())
	assert.Equal(t, d|inc|dec|eq, cursor.Detect[stepCursor, int, int]())
	assert.Equal(t, d|inc, cursor.Detect[countCursor, int, int]())
}

func TestDetect_OffsetAndElementMustMatch(t *testing.T) {
	// Advance(int) and DistanceTo(...) int do not satisfy the int64 forms.
	assert.Equal(t, d, cursor.Detect[sliceCursor, int, int64]())
	assert.Equal(t, adv|dst, cursor.Detect[sliceCursor, string, int]())
}

func TestDetect_ValueReceiverIncrement(t *testing.T) {
	// A value receiver cannot move the cursor.
	assert.Equal(t, d, cursor.Detect[valueIncrement, int, int]())
	assert.Equal(t, cursor.CategoryUnknown, cursor.CategoryOf[valueIncrement, int, int]())
}

func TestCategoryOf_TrustsGeneratedCategory(t *testing.T) {
	// Advance(int64) with an int offset is not an exact Advancer[int], so
	// the detected category is weaker than the generated one.
	assert.Equal(t, d|eq, cursor.Detect[wideCursor, int, int]())
	assert.Equal(t, cursor.CategoryForward, cursor.CategoryOf[wideCursor, int, int]())
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, cursor.CategoryRandomAccess, cursor.CategoryOf[sliceCursor, int, int]())
	assert.Equal(t, cursor.CategoryBidirectional, cursor.CategoryOf[stepCursor, int, int]())
	assert.Equal(t, cursor.CategoryInput, cursor.CategoryOf[countCursor, int, int]())
	assert.Equal(t, cursor.CategoryUnknown, cursor.CategoryOf[struct{}, int, int]())
}
