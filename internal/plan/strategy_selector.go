package plan

import (
	"cursor-generator/cursor"
)

// candidate is one fallback path for a derived operation.
type candidate struct {
	strategy    Strategy
	requires    cursor.Capability
	pointerRef  bool // only when Dereference yields a pointer
	valueRef    bool // only when Dereference yields a value
	dependsOn   []Operation
	explanation string
}

// fallbacks lists, per operation, the candidate paths in priority order.
// The first candidate whose requirements hold is the only one used.
var fallbacks = map[Operation][]candidate{
	OpCategory: {
		{strategy: StrategyConstant, explanation: "category fixed at generation time"},
	},
	OpGet: {
		{strategy: StrategyDereference, requires: cursor.CapDereference, explanation: "Dereference"},
	},
	OpPtr: {
		{
			strategy: StrategyPointerPassThrough, requires: cursor.CapDereference, pointerRef: true,
			explanation: "Dereference yields a pointer",
		},
		{
			strategy: StrategySurrogate, requires: cursor.CapDereference, valueRef: true,
			explanation: "Dereference yields a value; address of a copy",
		},
	},
	OpSkip: {
		{strategy: StrategyAdvance, requires: cursor.CapAdvance, explanation: "Advance"},
	},
	OpAdd: {
		{
			strategy: StrategyCopySkip, requires: cursor.CapAdvance, dependsOn: []Operation{OpSkip},
			explanation: "copy, then Skip",
		},
	},
	OpSub: {
		{
			strategy: StrategyNegatedAdd, requires: cursor.CapAdvance, dependsOn: []Operation{OpAdd},
			explanation: "Add with the negated offset",
		},
	},
	OpRewind: {
		{
			strategy: StrategyAssignSub, requires: cursor.CapAdvance, dependsOn: []Operation{OpSub},
			explanation: "assign Sub to the receiver",
		},
	},
	OpAt: {
		{
			strategy: StrategyAddGet, requires: cursor.CapAdvance, dependsOn: []Operation{OpAdd, OpGet},
			explanation: "Get on Add",
		},
	},
	OpNext: {
		{strategy: StrategyIncrement, requires: cursor.CapIncrement, explanation: "Increment"},
		{
			strategy: StrategySkipOne, requires: cursor.CapAdvance, dependsOn: []Operation{OpSkip},
			explanation: "no Increment; Skip(1)",
		},
	},
	OpPostNext: {
		{
			strategy: StrategyCopyNext, dependsOn: []Operation{OpNext},
			explanation: "copy, then Next",
		},
	},
	OpPrev: {
		{strategy: StrategyDecrement, requires: cursor.CapDecrement, explanation: "Decrement"},
		{
			strategy: StrategyRewindOne, requires: cursor.CapAdvance, dependsOn: []Operation{OpRewind},
			explanation: "no Decrement; Rewind(1)",
		},
	},
	OpPostPrev: {
		{
			strategy: StrategyCopyPrev, dependsOn: []Operation{OpPrev},
			explanation: "copy, then Prev",
		},
	},
	OpDiff: {
		{
			strategy: StrategyReverseDistance, requires: cursor.CapDistanceTo,
			explanation: "other.DistanceTo(receiver)",
		},
	},
	OpEqual: {
		{strategy: StrategyEqualTo, requires: cursor.CapEqualTo, explanation: "EqualTo"},
		{
			strategy: StrategyZeroDistance, requires: cursor.CapDistanceTo,
			explanation: "no EqualTo; DistanceTo is zero",
		},
	},
	OpCompare: {
		{
			strategy: StrategyCompareDiff, requires: cursor.CapDistanceTo, dependsOn: []Operation{OpDiff},
			explanation: "sign of Diff",
		},
	},
	OpLess: {
		{
			strategy: StrategyDiffSign, requires: cursor.CapDistanceTo, dependsOn: []Operation{OpDiff},
			explanation: "Diff is negative",
		},
	},
}

// SelectStrategy picks the fallback path for op given the detected
// capabilities. Paths are tried in fixed priority order and exactly one is
// returned; ok is false when the operation cannot be derived.
// Strategies that depend on other derived operations are only selected when
// those operations are selectable too.
func SelectStrategy(op Operation, caps cursor.Capability, pointerRef bool) (ResolvedOperation, bool) {
	for _, c := range fallbacks[op] {
		if !caps.Has(c.requires) {
			continue
		}

		if (c.pointerRef && !pointerRef) || (c.valueRef && pointerRef) {
			continue
		}

		if !dependenciesSelectable(c.dependsOn, caps, pointerRef) {
			continue
		}

		return ResolvedOperation{
			Op:          op,
			Strategy:    c.strategy,
			DependsOn:   c.dependsOn,
			Explanation: c.explanation,
		}, true
	}

	return ResolvedOperation{Op: op}, false
}

func dependenciesSelectable(deps []Operation, caps cursor.Capability, pointerRef bool) bool {
	for _, dep := range deps {
		if _, ok := SelectStrategy(dep, caps, pointerRef); !ok {
			return false
		}
	}

	return true
}

// SelectAll selects strategies for every derivable operation, in emission order.
func SelectAll(caps cursor.Capability, pointerRef bool) []ResolvedOperation {
	var ops []ResolvedOperation
	for _, op := range Operations() {
		if resolved, ok := SelectStrategy(op, caps, pointerRef); ok {
			ops = append(ops, resolved)
		}
	}

	return ops
}
