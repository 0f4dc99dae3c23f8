package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"cursor-generator/cursor"
)

type opStrategy struct {
	Op       string
	Strategy string
}

func summarize(ops []ResolvedOperation) []opStrategy {
	out := make([]opStrategy, len(ops))
	for i, op := range ops {
		out[i] = opStrategy{Op: op.Op.String(), Strategy: op.Strategy.String()}
	}

	return out
}

func TestSelectStrategy_FallbackOrder(t *testing.T) {
	tests := []struct {
		name       string
		op         Operation
		caps       cursor.Capability
		pointerRef bool
		want       Strategy
		wantOK     bool
	}{
		{"next prefers increment", OpNext, cursor.CapIncrement | cursor.CapAdvance, false, StrategyIncrement, true},
		{"next falls back to skip", OpNext, cursor.CapAdvance, false, StrategySkipOne, true},
		{"next unavailable", OpNext, cursor.CapDereference, false, 0, false},
		{"prev prefers decrement", OpPrev, cursor.CapDecrement | cursor.CapAdvance, false, StrategyDecrement, true},
		{"prev falls back to rewind", OpPrev, cursor.CapAdvance, false, StrategyRewindOne, true},
		{"prev unavailable", OpPrev, cursor.CapIncrement, false, 0, false},
		{"equal prefers equal_to", OpEqual, cursor.CapEqualTo | cursor.CapDistanceTo, false, StrategyEqualTo, true},
		{"equal falls back to distance", OpEqual, cursor.CapDistanceTo, false, StrategyZeroDistance, true},
		{"equal unavailable", OpEqual, cursor.CapIncrement, false, 0, false},
		{"ptr passes pointers through", OpPtr, cursor.CapDereference, true, StrategyPointerPassThrough, true},
		{"ptr copies values", OpPtr, cursor.CapDereference, false, StrategySurrogate, true},
		{"post prev needs prev", OpPostPrev, cursor.CapIncrement, false, 0, false},
		{"post prev with decrement", OpPostPrev, cursor.CapDecrement, false, StrategyCopyPrev, true},
		{"diff needs distance", OpDiff, cursor.CapAdvance, false, 0, false},
		{"less from diff", OpLess, cursor.CapDistanceTo, false, StrategyDiffSign, true},
		{"at needs advance", OpAt, cursor.CapDereference | cursor.CapIncrement, false, 0, false},
		{"category always", OpCategory, cursor.CapNone, false, StrategyConstant, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectStrategy(tt.op, tt.caps, tt.pointerRef)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got.Strategy)
				assert.Equal(t, tt.op, got.Op)
				assert.NotEmpty(t, got.Explanation)
			}
		})
	}
}

func TestSelectAll_RandomAccess(t *testing.T) {
	caps := cursor.CapDereference | cursor.CapAdvance | cursor.CapDistanceTo

	want := []opStrategy{
		{"Category", "constant"},
		{"Get", "dereference"},
		{"Ptr", "surrogate"},
		{"Skip", "advance"},
		{"Add", "copy_skip"},
		{"Sub", "negated_add"},
		{"Rewind", "assign_sub"},
		{"At", "add_get"},
		{"Next", "skip_one"},
		{"PostNext", "copy_next"},
		{"Prev", "rewind_one"},
		{"PostPrev", "copy_prev"},
		{"Diff", "reverse_distance"},
		{"Equal", "zero_distance"},
		{"Compare", "compare_diff"},
		{"Less", "diff_sign"},
	}

	if diff := cmp.Diff(want, summarize(SelectAll(caps, false))); diff != "" {
		t.Errorf("SelectAll mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectAll_Input(t *testing.T) {
	caps := cursor.CapDereference | cursor.CapIncrement

	want := []opStrategy{
		{"Category", "constant"},
		{"Get", "dereference"},
		{"Ptr", "surrogate"},
		{"Next", "increment"},
		{"PostNext", "copy_next"},
	}

	if diff := cmp.Diff(want, summarize(SelectAll(caps, false))); diff != "" {
		t.Errorf("SelectAll mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectAll_DependenciesPrecedeDependents(t *testing.T) {
	for caps := cursor.CapNone; caps <= cursor.CapAll; caps++ {
		ops := SelectAll(caps, caps.HasDecrement())

		position := make(map[Operation]int)
		for i, op := range ops {
			position[op.Op] = i
		}

		for i, op := range ops {
			for _, dep := range op.DependsOn {
				depPos, ok := position[dep]
				if assert.True(t, ok, "caps %s: %s depends on missing %s", caps, op.Op, dep) {
					assert.Less(t, depPos, i, "caps %s: %s emitted before %s", caps, op.Op, dep)
				}
			}
		}
	}
}

func TestOperation_Names(t *testing.T) {
	assert.Equal(t, "Skip", OpSkip.Method())
	assert.Equal(t, "x += n", OpSkip.Symbol())
	assert.Equal(t, "PostPrev", OpPostPrev.String())
	assert.Equal(t, "unknown", Operation(99).Method())
	assert.Equal(t, "unknown", Strategy(99).String())
	assert.Len(t, Operations(), 16)
}
