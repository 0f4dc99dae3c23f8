package analyze

import (
	"fmt"
	"go/types"

	"cursor-generator/cursor"
)

// Primitive method names recognized on a cursor variant type.
const (
	MethodDereference = "Dereference"
	MethodIncrement   = "Increment"
	MethodDecrement   = "Decrement"
	MethodAdvance     = "Advance"
	MethodEqualTo     = "EqualTo"
	MethodDistanceTo  = "DistanceTo"
)

// PrimitiveMethod returns the method name that provides a single capability.
func PrimitiveMethod(c cursor.Capability) string {
	switch c {
	case cursor.CapDereference:
		return MethodDereference
	case cursor.CapIncrement:
		return MethodIncrement
	case cursor.CapDecrement:
		return MethodDecrement
	case cursor.CapAdvance:
		return MethodAdvance
	case cursor.CapEqualTo:
		return MethodEqualTo
	case cursor.CapDistanceTo:
		return MethodDistanceTo
	default:
		return ""
	}
}

// PrimitiveMethods returns the method names for every capability in c,
// in capability bit order.
func PrimitiveMethods(c cursor.Capability) []string {
	var names []string
	for bit := cursor.CapDereference; bit&cursor.CapAll != 0; bit <<= 1 {
		if c.Has(bit) {
			names = append(names, PrimitiveMethod(bit))
		}
	}

	return names
}

// NearMiss records a method named like a primitive whose signature
// does not qualify. It is reported as a diagnostic, never as a capability.
type NearMiss struct {
	Capability cursor.Capability
	Method     string
	Reason     string
}

func (n NearMiss) String() string {
	return fmt.Sprintf("%s: %s", n.Method, n.Reason)
}

// Primitives is the outcome of capability detection on one type.
// Every predicate is total: an absent or malformed method is simply false.
type Primitives struct {
	Caps cursor.Capability

	Dereference *MethodInfo
	Increment   *MethodInfo
	Decrement   *MethodInfo
	Advance     *MethodInfo
	EqualTo     *MethodInfo
	DistanceTo  *MethodInfo

	RefType       types.Type // Result of Dereference
	DistanceType  types.Type // Result of DistanceTo
	AdvanceParam  types.Type // Parameter of Advance
	EqualToResult types.Type // Result of EqualTo
	Offset        types.Type // Offset type Advance was checked against

	NearMisses []NearMiss
}

// Detect runs the six capability predicates against the authored methods of
// t. Methods emitted by the generator are never considered.
//
// declaredOffset is the configured difference type, or nil. Advance is
// checked against the DistanceTo result when present, then declaredOffset,
// then int.
func Detect(t *TypeInfo, declaredOffset types.Type) Primitives {
	var p Primitives

	if m := t.AuthoredMethod(MethodDereference); m != nil {
		if reason := checkDereference(m); reason != "" {
			p.miss(cursor.CapDereference, m, reason)
		} else {
			p.Caps |= cursor.CapDereference
			p.Dereference = m
			p.RefType = m.Results()[0]
		}
	}

	if m := t.AuthoredMethod(MethodIncrement); m != nil {
		if reason := checkStep(m); reason != "" {
			p.miss(cursor.CapIncrement, m, reason)
		} else {
			p.Caps |= cursor.CapIncrement
			p.Increment = m
		}
	}

	if m := t.AuthoredMethod(MethodDecrement); m != nil {
		if reason := checkStep(m); reason != "" {
			p.miss(cursor.CapDecrement, m, reason)
		} else {
			p.Caps |= cursor.CapDecrement
			p.Decrement = m
		}
	}

	if m := t.AuthoredMethod(MethodEqualTo); m != nil {
		if reason := checkEqualTo(m, t); reason != "" {
			p.miss(cursor.CapEqualTo, m, reason)
		} else {
			p.Caps |= cursor.CapEqualTo
			p.EqualTo = m
			p.EqualToResult = m.Results()[0]
		}
	}

	if m := t.AuthoredMethod(MethodDistanceTo); m != nil {
		if reason := checkDistanceTo(m, t); reason != "" {
			p.miss(cursor.CapDistanceTo, m, reason)
		} else {
			p.Caps |= cursor.CapDistanceTo
			p.DistanceTo = m
			p.DistanceType = m.Results()[0]
		}
	}

	p.Offset = p.DistanceType
	if p.Offset == nil {
		p.Offset = declaredOffset
	}

	if p.Offset == nil {
		p.Offset = types.Typ[types.Int]
	}

	if m := t.AuthoredMethod(MethodAdvance); m != nil {
		if reason := checkAdvance(m, p.Offset); reason != "" {
			p.miss(cursor.CapAdvance, m, reason)
		} else {
			p.Caps |= cursor.CapAdvance
			p.Advance = m
			p.AdvanceParam = m.Params()[0]
		}
	}

	return p
}

func (p *Primitives) miss(c cursor.Capability, m *MethodInfo, reason string) {
	p.NearMisses = append(p.NearMisses, NearMiss{Capability: c, Method: m.Name, Reason: reason})
}

// Method returns the method providing a single capability, or nil.
func (p *Primitives) Method(c cursor.Capability) *MethodInfo {
	switch c {
	case cursor.CapDereference:
		return p.Dereference
	case cursor.CapIncrement:
		return p.Increment
	case cursor.CapDecrement:
		return p.Decrement
	case cursor.CapAdvance:
		return p.Advance
	case cursor.CapEqualTo:
		return p.EqualTo
	case cursor.CapDistanceTo:
		return p.DistanceTo
	default:
		return nil
	}
}

// DereferencesToPointer reports whether Dereference yields a pointer.
func (p *Primitives) DereferencesToPointer() bool {
	_, ok := p.RefType.(*types.Pointer)
	return ok
}

// EqualToIsBool reports whether EqualTo returns exactly bool, so that its
// result needs no conversion.
func (p *Primitives) EqualToIsBool() bool {
	return p.EqualToResult != nil && types.Identical(p.EqualToResult, types.Typ[types.Bool])
}

// AdvanceNeedsConversion reports whether the offset must be converted
// before it is passed to Advance.
func (p *Primitives) AdvanceNeedsConversion() bool {
	return p.AdvanceParam != nil && !types.Identical(p.AdvanceParam, p.Offset)
}

func checkDereference(m *MethodInfo) string {
	sig := m.Signature
	if sig.Params().Len() != 0 {
		return "must take no parameters"
	}

	if sig.Results().Len() != 1 {
		return fmt.Sprintf("must return exactly one value, returns %d", sig.Results().Len())
	}

	return ""
}

func checkStep(m *MethodInfo) string {
	if m.Signature.Params().Len() != 0 {
		return "must take no parameters"
	}

	if !m.PointerReceiver {
		return "must have a pointer receiver"
	}

	return ""
}

func checkAdvance(m *MethodInfo, offset types.Type) string {
	sig := m.Signature
	if !m.PointerReceiver {
		return "must have a pointer receiver"
	}

	if sig.Params().Len() != 1 || sig.Variadic() {
		return "must take exactly one offset parameter"
	}

	param := sig.Params().At(0).Type()
	if !IsSignedInteger(param) {
		return fmt.Sprintf("parameter %s is not a signed integer", param)
	}

	if !AcceptsOffset(param, offset) {
		return fmt.Sprintf("parameter %s does not accept offset type %s", param, offset)
	}

	return ""
}

func checkEqualTo(m *MethodInfo, t *TypeInfo) string {
	sig := m.Signature
	if sig.Params().Len() != 1 || sig.Variadic() {
		return "must take exactly one parameter"
	}

	if !AcceptsSelf(sig.Params().At(0).Type(), t) {
		return fmt.Sprintf("parameter %s does not accept a %s value", sig.Params().At(0).Type(), t.ID.Name)
	}

	if sig.Results().Len() != 1 {
		return "must return exactly one value"
	}

	res := sig.Results().At(0).Type()
	if b, ok := res.Underlying().(*types.Basic); !ok || b.Kind() != types.Bool {
		return fmt.Sprintf("result %s is not convertible to bool", res)
	}

	return ""
}

func checkDistanceTo(m *MethodInfo, t *TypeInfo) string {
	sig := m.Signature
	if sig.Params().Len() != 1 || sig.Variadic() {
		return "must take exactly one parameter"
	}

	if !AcceptsSelf(sig.Params().At(0).Type(), t) {
		return fmt.Sprintf("parameter %s does not accept a %s value", sig.Params().At(0).Type(), t.ID.Name)
	}

	if sig.Results().Len() != 1 {
		return "must return exactly one value"
	}

	if res := sig.Results().At(0).Type(); !IsSignedInteger(res) {
		return fmt.Sprintf("result %s is not a signed integer", res)
	}

	return ""
}

// IsSignedInteger reports whether t is a signed integer type.
func IsSignedInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	info := b.Info()

	return info&types.IsInteger != 0 && info&types.IsUnsigned == 0
}

// AcceptsOffset reports whether a value of the offset type can be passed
// as arg, possibly through an explicit conversion.
func AcceptsOffset(arg, offset types.Type) bool {
	if offset == nil || !IsSignedInteger(offset) || !IsSignedInteger(arg) {
		return false
	}

	return types.ConvertibleTo(offset, arg)
}

// AcceptsSelf reports whether a parameter of type param accepts a value
// of the variant type t. For generic types the parameter must be the type
// instantiated with the receiver's own type parameters.
func AcceptsSelf(param types.Type, t *TypeInfo) bool {
	named := t.Named()
	if named == nil {
		return false
	}

	if !t.IsGeneric() {
		return types.AssignableTo(named, param)
	}

	pn, ok := param.(*types.Named)
	if !ok || pn.Origin() != named.Origin() {
		return false
	}

	args := pn.TypeArgs()
	for i := range args.Len() {
		tp, ok := args.At(i).(*types.TypeParam)
		if !ok || tp.Index() != i {
			return false
		}
	}

	return true
}
