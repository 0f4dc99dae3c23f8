package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"cursor-generator/cursor"
	"cursor-generator/internal/analyze"
	"cursor-generator/internal/config"
	"cursor-generator/internal/logging"
	"cursor-generator/internal/plan"
)

// Import paths referenced by generated code.
const (
	RuntimePackagePath = "cursor-generator/cursor"
	runtimePackageName = "cursor"
	cmpPackagePath     = "cmp"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// GenerateAssertions enables interface compliance assertions.
	GenerateAssertions bool
	// GenerateMetadata enables element and offset type aliases.
	GenerateMetadata bool
	// DebugDir receives unformatted output when formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments:   true,
		GenerateAssertions: true,
		GenerateMetadata:   true,
	}
}

// ConfigFromOptions returns the generator configuration selected by the
// options section of a cursor configuration file.
func ConfigFromOptions(o config.Options) GeneratorConfig {
	return GeneratorConfig{
		GenerateComments:   o.CommentsEnabled(),
		GenerateAssertions: o.AssertionsEnabled(),
		GenerateMetadata:   o.MetadataEnabled(),
	}
}

// Generator generates Go code from a resolved cursor plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "cursor_gen.go").
	Filename string
	// Dir is the directory the file belongs in.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// templateData holds all data needed for the cursor template.
type templateData struct {
	PackageName string
	Imports     []importSpec
	Cursors     []cursorData
}

type cursorData struct {
	Aliases    []aliasData
	Assertions []string
	Methods    []methodData
}

type aliasData struct {
	Doc  string
	Name string
	Type string
}

type methodData struct {
	Doc    string
	Recv   string
	Name   string
	Params string
	Result string
	Body   []string
}

// Generate renders the derived methods of every cursor in the plan into a
// single file. Plans that carry error diagnostics are rejected.
func (g *Generator) Generate(p *plan.ResolvedCursorPlan) (*GeneratedFile, error) {
	if p == nil || p.Package == nil {
		return nil, fmt.Errorf("plan has no package")
	}

	if err := p.Diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("plan has errors: %w", err)
	}

	tf := newTypeFormatter(p.Package.Path, reservedNames(p.Package))
	rt := tf.Import(RuntimePackagePath, runtimePackageName)

	data := &templateData{PackageName: p.Package.Name}

	for i := range p.Cursors {
		c := &p.Cursors[i]

		cd, err := g.buildCursorData(c, tf, rt)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", c.Name(), err)
		}

		data.Cursors = append(data.Cursors, cd)
	}

	data.Imports = tf.Imports()

	file := &GeneratedFile{
		Filename: filepath.Base(p.Output),
		Dir:      filepath.Dir(p.Output),
	}

	var buf bytes.Buffer
	if err := cursorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if _, derr := writeDebugUnformatted(g.config.DebugDir, file.Filename, buf.Bytes()); derr != nil {
			logging.Err(derr).Msg("writing unformatted cursor source")
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	logging.Debug().
		Str("file", file.Path()).
		Int("cursors", len(data.Cursors)).
		Int("bytes", len(formatted)).
		Msg("generated cursor file")

	return file, nil
}

// reservedNames returns the package scope names declared outside generated
// files. Imports in the generated file must not shadow them.
func reservedNames(pkg *analyze.PackageInfo) []string {
	if pkg.GoPackage == nil {
		return nil
	}

	var names []string

	scope := pkg.GoPackage.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if pkg.Fset != nil && slices.Contains(pkg.GeneratedFiles, pkg.Fset.Position(obj.Pos()).Filename) {
			continue
		}

		names = append(names, name)
	}

	return names
}

// buildCursorData renders the declarations for one cursor.
func (g *Generator) buildCursorData(c *plan.ResolvedCursor, tf *typeFormatter, rt string) (cursorData, error) {
	var cd cursorData

	order, err := topoSortOperations(c.Operations)
	if err != nil {
		return cd, err
	}

	r := newRenderer(c, tf, rt)

	if !c.Type.IsGeneric() {
		if g.config.GenerateMetadata {
			cd.Aliases = r.aliases(g.config.GenerateComments)
		}

		if g.config.GenerateAssertions {
			cd.Assertions = r.assertions()
		}
	}

	for _, op := range order {
		m, err := r.method(op)
		if err != nil {
			return cd, err
		}

		if !g.config.GenerateComments {
			m.Doc = ""
		}

		cd.Methods = append(cd.Methods, m)
	}

	return cd, nil
}

// renderer holds the source text shared by the methods of one cursor.
type renderer struct {
	c       *plan.ResolvedCursor
	tf      *typeFormatter
	rt      string // local name of the cursor runtime package
	self    string // variant type as written in a receiver, e.g. "Ring[T]"
	ref     string // Dereference result
	offset  string // offset type
	advance string // Advance parameter, when it differs from offset
}

func newRenderer(c *plan.ResolvedCursor, tf *typeFormatter, rt string) *renderer {
	r := &renderer{
		c:      c,
		tf:     tf,
		rt:     rt,
		self:   selfType(c),
		ref:    tf.Type(c.RefType),
		offset: tf.Type(c.OffsetType),
	}

	if c.Primitives.AdvanceNeedsConversion() {
		r.advance = tf.Type(c.Primitives.AdvanceParam)
	}

	return r
}

// selfType returns the variant type as written in a receiver. Generic types
// use the type parameter names of their Dereference method, which the
// element type is expressed in.
func selfType(c *plan.ResolvedCursor) string {
	name := c.Type.ID.Name
	if !c.Type.IsGeneric() {
		return name
	}

	params := c.Type.TypeParamNames()
	if d := c.Primitives.Dereference; d != nil && len(d.RecvTypeParams) == len(params) {
		params = d.RecvTypeParams
	}

	return name + "[" + strings.Join(params, ", ") + "]"
}

func (r *renderer) aliases(comments bool) []aliasData {
	name := r.c.Name()
	elem := aliasData{
		Name: plan.ElemAlias(name),
		Type: r.tf.Type(r.c.ElemType),
	}
	offset := aliasData{
		Name: plan.OffsetAlias(name),
		Type: r.offset,
	}

	if comments {
		elem.Doc = fmt.Sprintf("%s is the element type of %s.", elem.Name, name)
		offset.Doc = fmt.Sprintf("%s is the offset type of %s.", offset.Name, name)
	}

	return []aliasData{elem, offset}
}

// assertions returns one compliance assertion per protocol interface.
func (r *renderer) assertions() []string {
	protocols := r.c.Protocols()
	out := make([]string, 0, len(protocols))

	for _, proto := range protocols {
		var args []string

		switch proto {
		case "Comparable", "Reversible":
			args = []string{r.self}
		case "Ordered":
			args = []string{r.self, r.offset}
		case "Offsettable", "RandomAccess":
			args = []string{r.self, r.ref, r.offset}
		default:
			args = []string{r.self, r.ref}
		}

		out = append(out, fmt.Sprintf("%s.%s[%s] = (*%s)(nil)", r.rt, proto, strings.Join(args, ", "), r.self))
	}

	return out
}

// method renders the derived method for one resolved operation. Every
// strategy maps to exactly one body.
func (r *renderer) method(op plan.ResolvedOperation) (methodData, error) {
	val := "c " + r.self
	ptr := "c *" + r.self
	n := "n " + r.offset
	o := "o " + r.self

	switch op.Strategy {
	case plan.StrategyConstant:
		return methodData{
			Doc:    "Category reports the traversal category of the cursor.",
			Recv:   r.self,
			Name:   "Category",
			Result: r.rt + ".Category",
			Body:   []string{"return " + r.rt + "." + categoryIdent(r.c.Category)},
		}, nil
	case plan.StrategyDereference:
		return methodData{
			Doc:    "Get returns the element at the cursor.",
			Recv:   val,
			Name:   "Get",
			Result: r.ref,
			Body:   []string{"return c.Dereference()"},
		}, nil
	case plan.StrategyPointerPassThrough:
		return methodData{
			Doc:    "Ptr returns a pointer to the element at the cursor.",
			Recv:   val,
			Name:   "Ptr",
			Result: r.ref,
			Body:   []string{"return c.Dereference()"},
		}, nil
	case plan.StrategySurrogate:
		return methodData{
			Doc:    "Ptr returns a pointer to a copy of the element at the cursor.",
			Recv:   val,
			Name:   "Ptr",
			Result: "*" + r.ref,
			Body:   []string{"v := c.Dereference()", "return &v"},
		}, nil
	case plan.StrategyAdvance:
		arg := "n"
		if r.advance != "" {
			arg = r.advance + "(n)"
		}

		return methodData{
			Doc:    "Skip moves the cursor forward by n and returns it.",
			Recv:   ptr,
			Name:   "Skip",
			Params: n,
			Result: "*" + r.self,
			Body:   []string{"c.Advance(" + arg + ")", "return c"},
		}, nil
	case plan.StrategyCopySkip:
		return methodData{
			Doc:    "Add returns a copy of the cursor moved forward by n.",
			Recv:   val,
			Name:   "Add",
			Params: n,
			Result: r.self,
			Body:   []string{"c.Skip(n)", "return c"},
		}, nil
	case plan.StrategyNegatedAdd:
		return methodData{
			Doc:    "Sub returns a copy of the cursor moved back by n.",
			Recv:   val,
			Name:   "Sub",
			Params: n,
			Result: r.self,
			Body:   []string{"return c.Add(-n)"},
		}, nil
	case plan.StrategyAssignSub:
		return methodData{
			Doc:    "Rewind moves the cursor back by n and returns it.",
			Recv:   ptr,
			Name:   "Rewind",
			Params: n,
			Result: "*" + r.self,
			Body:   []string{"*c = c.Sub(n)", "return c"},
		}, nil
	case plan.StrategyAddGet:
		return methodData{
			Doc:    "At returns the element n positions after the cursor.",
			Recv:   val,
			Name:   "At",
			Params: n,
			Result: r.ref,
			Body:   []string{"return c.Add(n).Get()"},
		}, nil
	case plan.StrategyIncrement:
		return r.step("Next", "forward", []string{"c.Increment()", "return c"}), nil
	case plan.StrategySkipOne:
		return r.step("Next", "forward", []string{"return c.Skip(1)"}), nil
	case plan.StrategyCopyNext:
		return r.postStep("PostNext", "forward", "Next"), nil
	case plan.StrategyDecrement:
		return r.step("Prev", "back", []string{"c.Decrement()", "return c"}), nil
	case plan.StrategyRewindOne:
		return r.step("Prev", "back", []string{"return c.Rewind(1)"}), nil
	case plan.StrategyCopyPrev:
		return r.postStep("PostPrev", "back", "Prev"), nil
	case plan.StrategyReverseDistance:
		return methodData{
			Doc:    "Diff returns the signed distance from o to the cursor.",
			Recv:   val,
			Name:   "Diff",
			Params: o,
			Result: r.offset,
			Body:   []string{"return o.DistanceTo(c)"},
		}, nil
	case plan.StrategyEqualTo:
		expr := "c.EqualTo(o)"
		if !r.c.Primitives.EqualToIsBool() {
			expr = "bool(" + expr + ")"
		}

		return r.equal(expr), nil
	case plan.StrategyZeroDistance:
		return r.equal("c.DistanceTo(o) == 0"), nil
	case plan.StrategyCompareDiff:
		cmpName := r.tf.Import(cmpPackagePath, cmpPackagePath)

		return methodData{
			Doc:    "Compare returns -1, 0 or +1 when the cursor is before, at or after o.",
			Recv:   val,
			Name:   "Compare",
			Params: o,
			Result: "int",
			Body:   []string{"return " + cmpName + ".Compare(c.Diff(o), 0)"},
		}, nil
	case plan.StrategyDiffSign:
		return methodData{
			Doc:    "Less reports whether the cursor is before o.",
			Recv:   val,
			Name:   "Less",
			Params: o,
			Result: "bool",
			Body:   []string{"return c.Diff(o) < 0"},
		}, nil
	default:
		return methodData{}, fmt.Errorf("no template for %s strategy %s", op.Op, op.Strategy)
	}
}

func (r *renderer) step(name, direction string, body []string) methodData {
	return methodData{
		Doc:    fmt.Sprintf("%s moves the cursor %s by one and returns it.", name, direction),
		Recv:   "c *" + r.self,
		Name:   name,
		Result: "*" + r.self,
		Body:   body,
	}
}

func (r *renderer) postStep(name, direction, step string) methodData {
	return methodData{
		Doc:    fmt.Sprintf("%s moves the cursor %s by one and returns its previous position.", name, direction),
		Recv:   "c *" + r.self,
		Name:   name,
		Result: r.self,
		Body:   []string{"saved := *c", "c." + step + "()", "return saved"},
	}
}

func (r *renderer) equal(expr string) methodData {
	return methodData{
		Doc:    "Equal reports whether both cursors refer to the same position.",
		Recv:   "c " + r.self,
		Name:   "Equal",
		Params: "o " + r.self,
		Result: "bool",
		Body:   []string{"return " + expr},
	}
}

// categoryIdent returns the name of the runtime constant for c.
func categoryIdent(c cursor.Category) string {
	switch c {
	case cursor.CategoryInput:
		return "CategoryInput"
	case cursor.CategoryForward:
		return "CategoryForward"
	case cursor.CategoryBidirectional:
		return "CategoryBidirectional"
	case cursor.CategoryRandomAccess:
		return "CategoryRandomAccess"
	default:
		return "CategoryUnknown"
	}
}

// Template for the cursor file

var cursorTemplate = template.Must(template.New("cursor").Parse(`// Code generated by cursor-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Cursors}}{{range .Aliases}}
{{if .Doc}}// {{.Doc}}
{{end}}type {{.Name}} = {{.Type}}
{{end}}{{if .Assertions}}
{{range .Assertions}}var _ {{.}}
{{end}}{{end}}{{range .Methods}}
{{if .Doc}}// {{.Doc}}
{{end}}func ({{.Recv}}) {{.Name}}({{.Params}}) {{.Result}} {
{{range .Body}}	{{.}}
{{end}}}
{{end}}{{end}}`))
