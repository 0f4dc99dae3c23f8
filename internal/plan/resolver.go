package plan

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"slices"

	"cursor-generator/cursor"
	"cursor-generator/internal/analyze"
	"cursor-generator/internal/config"
	"cursor-generator/internal/diagnostic"
	"cursor-generator/internal/logging"
	"cursor-generator/internal/match"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// MinSuggestionScore is the minimum similarity for a "did you mean" hint.
	MinSuggestionScore float64
	// MaxSuggestions is the maximum number of names suggested per diagnostic.
	MaxSuggestions int
	// StrictMode turns warnings into a failed resolution.
	StrictMode bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		MinSuggestionScore: match.DefaultMinScore,
		MaxSuggestions:     match.DefaultMaxSuggestions,
		StrictMode:         false,
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	graph   *analyze.TypeGraph
	file    *config.File
	pkgPath string
	config  ResolutionConfig
}

// NewResolver creates a new Resolver for the cursors of file declared in
// the package pkgPath.
func NewResolver(
	graph *analyze.TypeGraph,
	file *config.File,
	pkgPath string,
	config ResolutionConfig,
) *Resolver {
	return &Resolver{
		graph:   graph,
		file:    file,
		pkgPath: pkgPath,
		config:  config,
	}
}

// Resolve runs the full resolution pipeline and returns a ResolvedCursorPlan.
// Problems with individual cursors are reported as diagnostics on the plan;
// an error is returned only when resolution cannot start at all.
func (r *Resolver) Resolve() (*ResolvedCursorPlan, error) {
	if r.file == nil {
		return nil, errors.New("cursor configuration is required")
	}

	if r.graph == nil {
		return nil, errors.New("type graph is required")
	}

	pkg, ok := r.graph.Packages[r.pkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s was not loaded", r.pkgPath)
	}

	plan := &ResolvedCursorPlan{
		Package: pkg,
		Options: r.file.Options,
		Output:  filepath.Join(pkg.Dir, r.file.Output),
	}

	plan.Diagnostics.Merge(*config.Validate(r.file))

	seen := make(map[string]bool)

	for _, spec := range r.file.Cursors {
		if spec.Type == "" || seen[spec.Type] {
			continue
		}

		seen[spec.Type] = true

		resolved, ok := r.resolveCursor(spec, &plan.Diagnostics)
		if !ok {
			continue
		}

		logging.Debug().
			Str("cursor", spec.Type).
			Str("category", resolved.Category.String()).
			Str("capabilities", resolved.Primitives.Caps.String()).
			Int("operations", len(resolved.Operations)).
			Msg("resolved cursor")

		plan.Cursors = append(plan.Cursors, *resolved)
	}

	if r.config.StrictMode && (plan.Diagnostics.HasErrors() || len(plan.Diagnostics.Warnings) > 0) {
		return plan, errors.New("strict mode: resolution reported problems")
	}

	return plan, nil
}

// resolveCursor resolves one configured cursor. It returns false when any
// error was reported for it.
func (r *Resolver) resolveCursor(spec config.CursorSpec, diags *diagnostic.Diagnostics) (*ResolvedCursor, bool) {
	name := spec.Type
	before := len(diags.Errors)

	info := config.ResolveCursorType(name, r.pkgPath, r.graph)
	if info == nil {
		diags.AddError(diagnostic.CodeTypeNotFound,
			fmt.Sprintf("type %q not found in package %s", name, r.pkgPath), name, "",
			r.suggest(name, config.PackageTypeNames(r.pkgPath, r.graph))...)

		return nil, false
	}

	if !info.Kind.CanCarryMethods() {
		diags.AddError(diagnostic.CodeUnsupportedKind,
			fmt.Sprintf("type %s has %s kind and cannot carry cursor methods", name, info.Kind), name, "")

		return nil, false
	}

	declaredOffset := r.declaredOffset(spec, diags)
	prims := analyze.Detect(info, declaredOffset)

	for _, nm := range prims.NearMisses {
		diags.AddWarning(diagnostic.CodeSignatureMismatch,
			fmt.Sprintf("%s is not used as %s: %s", nm.Method, nm.Capability, nm.Reason), name, nm.Method)
	}

	r.checkContracts(info, prims.Caps, diags)

	if prims.DistanceType != nil && declaredOffset != nil && !types.Identical(prims.DistanceType, declaredOffset) {
		diags.AddError(diagnostic.CodeOffsetMismatch,
			fmt.Sprintf("difference_type %s does not match DistanceTo result %s", declaredOffset, prims.DistanceType),
			name, analyze.MethodDistanceTo, prims.DistanceType.String())
	}

	if len(diags.Errors) > before {
		return nil, false
	}

	resolved := &ResolvedCursor{
		Type:       info,
		Spec:       spec,
		Primitives: prims,
		Category:   prims.Caps.Category(),
		RefType:    prims.RefType,
		ElemType:   r.elemType(spec, prims, diags),
		OffsetType: prims.Offset,
		Operations: SelectAll(prims.Caps, prims.DereferencesToPointer()),
	}

	r.checkCategory(resolved, diags)
	r.checkTypeParams(info, diags)
	r.checkConflicts(resolved, diags)
	r.checkDependencies(resolved, diags)

	if len(diags.Errors) > before {
		return nil, false
	}

	return resolved, true
}

// checkContracts reports missing mandatory primitives. Both contracts are
// reported when both are missing.
func (r *Resolver) checkContracts(info *analyze.TypeInfo, caps cursor.Capability, diags *diagnostic.Diagnostics) {
	name := info.ID.Name
	methods := info.MethodNames()

	if !caps.HasDereference() {
		diags.AddError(diagnostic.CodeMissingDereference,
			fmt.Sprintf("%s: %v", name, cursor.ErrNoDereference), name, analyze.MethodDereference,
			r.suggest(analyze.MethodDereference, methods)...)
	}

	if !caps.CanStepForward() {
		var suggestions []string
		suggestions = append(suggestions, r.suggest(analyze.MethodIncrement, methods)...)
		suggestions = append(suggestions, r.suggest(analyze.MethodAdvance, methods)...)
		slices.Sort(suggestions)

		diags.AddError(diagnostic.CodeMissingForwardStep,
			fmt.Sprintf("%s: %v", name, cursor.ErrNoForwardStep), name, analyze.MethodIncrement,
			slices.Compact(suggestions)...)
	}
}

func (r *Resolver) declaredOffset(spec config.CursorSpec, diags *diagnostic.Diagnostics) types.Type {
	if spec.DifferenceType == "" {
		return nil
	}

	typ, err := r.graph.EvalType(r.pkgPath, spec.DifferenceType)
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidOffsetType, err.Error(), spec.Type, "")
		return nil
	}

	if !analyze.IsSignedInteger(typ) {
		diags.AddError(diagnostic.CodeInvalidOffsetType,
			fmt.Sprintf("difference_type %s is not a signed integer type", typ), spec.Type, "")

		return nil
	}

	return typ
}

// elemType returns the declared value type, or the Dereference result with
// one level of pointer removed.
func (r *Resolver) elemType(spec config.CursorSpec, prims analyze.Primitives, diags *diagnostic.Diagnostics) types.Type {
	if spec.ValueType != "" {
		typ, err := r.graph.EvalType(r.pkgPath, spec.ValueType)
		if err == nil {
			return typ
		}

		diags.AddError(diagnostic.CodeInvalidValueType, err.Error(), spec.Type, "")
	}

	if ptr, ok := prims.RefType.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return prims.RefType
}

func (r *Resolver) checkCategory(c *ResolvedCursor, diags *diagnostic.Diagnostics) {
	name := c.Name()

	required, err := c.Spec.RequiredCategory()
	if err == nil && required.IsValid() && !c.Category.Includes(required) {
		missing := c.Primitives.Caps.Missing(required)
		diags.AddError(diagnostic.CodeCategoryBelowRequire,
			fmt.Sprintf("%s is %s, %s required; add %s", name, c.Category, required, missing), name, "",
			analyze.PrimitiveMethods(missing)...)
	}

	if c.Category == cursor.CategoryBidirectional && !c.Primitives.Caps.CanCompare() {
		diags.AddWarning(diagnostic.CodeNoEquality,
			fmt.Sprintf("%s steps backward but has no EqualTo or DistanceTo; Equal is not derived", name),
			name, "Equal")
	}
}

// checkTypeParams warns when methods rename the type parameters of a
// generic type. Generated receivers use the names of the Dereference receiver.
func (r *Resolver) checkTypeParams(info *analyze.TypeInfo, diags *diagnostic.Diagnostics) {
	if !info.IsGeneric() {
		return
	}

	declared := info.TypeParamNames()
	for _, m := range info.Methods {
		if m.Generated || m.Promoted || slices.Equal(m.RecvTypeParams, declared) {
			continue
		}

		diags.AddWarning(diagnostic.CodeTypeParamRenamed,
			fmt.Sprintf("receiver of %s names type parameters %v, declaration uses %v", m.Name, m.RecvTypeParams, declared),
			info.ID.Name, m.Name)
	}
}

// checkConflicts reports derived methods and aliases the type already declares.
func (r *Resolver) checkConflicts(c *ResolvedCursor, diags *diagnostic.Diagnostics) {
	name := c.Name()

	for _, op := range c.Operations {
		method := op.Op.Method()
		if m := c.Type.Method(method); m != nil && !m.Generated {
			diags.AddError(diagnostic.CodeMethodConflict,
				fmt.Sprintf("%s already declares %s; rename it so %s can be generated", name, method, op.Op.Symbol()),
				name, method)
		}

		if c.Type.HasField(method) {
			diags.AddError(diagnostic.CodeMethodConflict,
				fmt.Sprintf("%s has a field named %s; rename it so %s can be generated", name, method, op.Op.Symbol()),
				name, method)
		}
	}

	if c.Type.IsGeneric() || !r.file.Options.MetadataEnabled() {
		return
	}

	for _, alias := range []string{ElemAlias(name), OffsetAlias(name)} {
		if r.declaredOutsideGenerated(alias) {
			diags.AddError(diagnostic.CodeMethodConflict,
				fmt.Sprintf("package already declares %s", alias), name, "")
		}
	}
}

func (r *Resolver) declaredOutsideGenerated(name string) bool {
	pkg := r.graph.Packages[r.pkgPath]
	if pkg == nil || pkg.GoPackage == nil {
		return false
	}

	obj := pkg.GoPackage.Scope().Lookup(name)
	if obj == nil {
		return false
	}

	file := pkg.Fset.Position(obj.Pos()).Filename

	return !slices.Contains(pkg.GeneratedFiles, file)
}

// checkDependencies verifies every derived operation only calls operations
// that are derived as well.
func (r *Resolver) checkDependencies(c *ResolvedCursor, diags *diagnostic.Diagnostics) {
	for _, op := range c.Operations {
		for _, dep := range op.DependsOn {
			if !c.Has(dep) {
				diags.AddError(diagnostic.CodeDerivation,
					fmt.Sprintf("%s derives %s from %s, which is not available", c.Name(), op.Op, dep),
					c.Name(), op.Op.Method())
			}
		}
	}
}

func (r *Resolver) suggest(want string, names []string) []string {
	return match.Suggest(want, names, r.config.MinSuggestionScore, r.config.MaxSuggestions)
}

// ElemAlias returns the name of the element type alias emitted for a cursor.
func ElemAlias(typeName string) string {
	return typeName + "Elem"
}

// OffsetAlias returns the name of the offset type alias emitted for a cursor.
func OffsetAlias(typeName string) string {
	return typeName + "Offset"
}
