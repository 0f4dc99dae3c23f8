package plan

import (
	"go/types"

	"cursor-generator/cursor"
	"cursor-generator/internal/analyze"
	"cursor-generator/internal/common"
	"cursor-generator/internal/config"
	"cursor-generator/internal/diagnostic"
)

// ResolvedCursorPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedCursorPlan struct {
	// Cursors is the list of resolved cursor types, in configuration order.
	Cursors []ResolvedCursor
	// Package is the package the cursors are declared in.
	Package *analyze.PackageInfo
	// Options toggles optional parts of the generated file.
	Options config.Options
	// Output is the path of the generated file.
	Output string
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Cursor returns the resolved cursor with the given type name, or nil.
func (p *ResolvedCursorPlan) Cursor(name string) *ResolvedCursor {
	for i := range p.Cursors {
		if p.Cursors[i].Type.ID.Name == name {
			return &p.Cursors[i]
		}
	}

	return nil
}

// ResolvedCursor is a variant type together with everything derived for it.
type ResolvedCursor struct {
	// Type is the variant type.
	Type *analyze.TypeInfo
	// Spec is the configuration entry that requested the cursor.
	Spec config.CursorSpec
	// Primitives are the detected capabilities.
	Primitives analyze.Primitives
	// Category is the derived traversal category.
	Category cursor.Category
	// RefType is the result type of Dereference.
	RefType types.Type
	// ElemType is the element type: declared, or RefType without its pointer.
	ElemType types.Type
	// OffsetType is the signed offset type.
	OffsetType types.Type
	// Operations lists the derived operations to emit, in emission order.
	Operations []ResolvedOperation
}

// Name returns the variant type name.
func (c *ResolvedCursor) Name() string {
	return c.Type.ID.Name
}

// Operation returns the resolved operation, or nil when it is not derived.
func (c *ResolvedCursor) Operation(op Operation) *ResolvedOperation {
	for i := range c.Operations {
		if c.Operations[i].Op == op {
			return &c.Operations[i]
		}
	}

	return nil
}

// Has reports whether the operation is derived for this cursor.
func (c *ResolvedCursor) Has(op Operation) bool {
	return c.Operation(op) != nil
}

// Protocols returns the names of the cursor protocol interfaces the
// cursor satisfies, in the order assertions are emitted.
func (c *ResolvedCursor) Protocols() []string {
	protocols := []string{"Input"}
	if c.Has(OpEqual) {
		protocols = append(protocols, "Comparable")
	}

	if c.Has(OpPrev) {
		protocols = append(protocols, "Reversible")
	}

	if c.Has(OpSkip) {
		protocols = append(protocols, "Offsettable")
	}

	if c.Has(OpDiff) {
		protocols = append(protocols, "Ordered")
	}

	switch c.Category {
	case cursor.CategoryForward:
		protocols = append(protocols, "Forward")
	case cursor.CategoryBidirectional:
		if c.Has(OpEqual) {
			protocols = append(protocols, "Forward", "Bidirectional")
		}
	case cursor.CategoryRandomAccess:
		protocols = append(protocols, "Forward", "Bidirectional", "RandomAccess")
	}

	return protocols
}

// ResolvedOperation is one derived operation and the strategy chosen for it.
type ResolvedOperation struct {
	// Op is the derived operation.
	Op Operation
	// Strategy is the single fallback path selected.
	Strategy Strategy
	// DependsOn lists derived operations the strategy calls.
	DependsOn []Operation
	// Explanation describes why this strategy was chosen.
	Explanation string
}

// Operation is a derived cursor operation.
type Operation int

const (
	OpCategory Operation = iota
	OpGet
	OpPtr
	OpSkip
	OpAdd
	OpSub
	OpRewind
	OpAt
	OpNext
	OpPostNext
	OpPrev
	OpPostPrev
	OpDiff
	OpEqual
	OpCompare
	OpLess

	opCount
)

// Operations returns every derived operation in emission order.
func Operations() []Operation {
	ops := make([]Operation, 0, opCount)
	for op := range opCount {
		ops = append(ops, op)
	}

	return ops
}

var operationMethods = [...]string{
	OpCategory: "Category",
	OpGet:      "Get",
	OpPtr:      "Ptr",
	OpSkip:     "Skip",
	OpAdd:      "Add",
	OpSub:      "Sub",
	OpRewind:   "Rewind",
	OpAt:       "At",
	OpNext:     "Next",
	OpPostNext: "PostNext",
	OpPrev:     "Prev",
	OpPostPrev: "PostPrev",
	OpDiff:     "Diff",
	OpEqual:    "Equal",
	OpCompare:  "Compare",
	OpLess:     "Less",
}

var operationSymbols = [...]string{
	OpCategory: "category",
	OpGet:      "*x",
	OpPtr:      "x->",
	OpSkip:     "x += n",
	OpAdd:      "x + n",
	OpSub:      "x - n",
	OpRewind:   "x -= n",
	OpAt:       "x[n]",
	OpNext:     "++x",
	OpPostNext: "x++",
	OpPrev:     "--x",
	OpPostPrev: "x--",
	OpDiff:     "x - y",
	OpEqual:    "x == y",
	OpCompare:  "x <=> y",
	OpLess:     "x < y",
}

// Method returns the name of the generated method.
func (o Operation) Method() string {
	if o < 0 || o >= opCount {
		return common.UnknownStr
	}

	return operationMethods[o]
}

// Symbol returns the conventional operator notation of the operation.
func (o Operation) Symbol() string {
	if o < 0 || o >= opCount {
		return common.UnknownStr
	}

	return operationSymbols[o]
}

// String returns the method name.
func (o Operation) String() string {
	return o.Method()
}

// Strategy is the fallback path chosen to derive an operation.
type Strategy int

const (
	// StrategyConstant - the value is fixed at generation time.
	StrategyConstant Strategy = iota
	// StrategyDereference - calls Dereference.
	StrategyDereference
	// StrategyPointerPassThrough - Dereference already yields a pointer.
	StrategyPointerPassThrough
	// StrategySurrogate - copies the dereferenced value and returns its address.
	StrategySurrogate
	// StrategyAdvance - calls Advance.
	StrategyAdvance
	// StrategyCopySkip - copies the cursor and skips the copy.
	StrategyCopySkip
	// StrategyNegatedAdd - adds the negated offset.
	StrategyNegatedAdd
	// StrategyAssignSub - assigns the result of Sub to the receiver.
	StrategyAssignSub
	// StrategyAddGet - dereferences the cursor n positions ahead.
	StrategyAddGet
	// StrategyIncrement - calls Increment.
	StrategyIncrement
	// StrategySkipOne - skips by one.
	StrategySkipOne
	// StrategyCopyNext - saves a copy, steps forward, returns the copy.
	StrategyCopyNext
	// StrategyDecrement - calls Decrement.
	StrategyDecrement
	// StrategyRewindOne - rewinds by one.
	StrategyRewindOne
	// StrategyCopyPrev - saves a copy, steps backward, returns the copy.
	StrategyCopyPrev
	// StrategyReverseDistance - asks the other cursor for its distance to the receiver.
	StrategyReverseDistance
	// StrategyEqualTo - calls EqualTo.
	StrategyEqualTo
	// StrategyZeroDistance - compares DistanceTo with zero.
	StrategyZeroDistance
	// StrategyCompareDiff - three-way comparison of Diff with zero.
	StrategyCompareDiff
	// StrategyDiffSign - Diff is negative.
	StrategyDiffSign
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyConstant:
		return "constant"
	case StrategyDereference:
		return "dereference"
	case StrategyPointerPassThrough:
		return "pointer_pass_through"
	case StrategySurrogate:
		return "surrogate"
	case StrategyAdvance:
		return "advance"
	case StrategyCopySkip:
		return "copy_skip"
	case StrategyNegatedAdd:
		return "negated_add"
	case StrategyAssignSub:
		return "assign_sub"
	case StrategyAddGet:
		return "add_get"
	case StrategyIncrement:
		return "increment"
	case StrategySkipOne:
		return "skip_one"
	case StrategyCopyNext:
		return "copy_next"
	case StrategyDecrement:
		return "decrement"
	case StrategyRewindOne:
		return "rewind_one"
	case StrategyCopyPrev:
		return "copy_prev"
	case StrategyReverseDistance:
		return "reverse_distance"
	case StrategyEqualTo:
		return "equal_to"
	case StrategyZeroDistance:
		return "zero_distance"
	case StrategyCompareDiff:
		return "compare_diff"
	case StrategyDiffSign:
		return "diff_sign"
	default:
		return common.UnknownStr
	}
}
