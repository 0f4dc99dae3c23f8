package plan

import (
	"go/types"

	"gopkg.in/yaml.v3"

	"cursor-generator/internal/config"
)

// Report is a serializable summary of a resolved plan.
type Report struct {
	Package     string         `yaml:"package"`
	Output      string         `yaml:"output"`
	Cursors     []CursorReport `yaml:"cursors"`
	Diagnostics []string       `yaml:"diagnostics,omitempty"`
}

// CursorReport summarizes one resolved cursor.
type CursorReport struct {
	Type         string            `yaml:"type"`
	Category     string            `yaml:"category"`
	Capabilities []string          `yaml:"capabilities"`
	RefType      string            `yaml:"ref_type"`
	ElemType     string            `yaml:"elem_type"`
	OffsetType   string            `yaml:"offset_type"`
	Operations   []OperationReport `yaml:"operations"`
}

// OperationReport summarizes one derived operation.
type OperationReport struct {
	Method      string `yaml:"method"`
	Symbol      string `yaml:"symbol"`
	Strategy    string `yaml:"strategy"`
	Explanation string `yaml:"explanation"`
}

// BuildReport summarizes a resolved plan. Types are printed relative to the
// cursor package.
func BuildReport(p *ResolvedCursorPlan) Report {
	var qf types.Qualifier
	if p.Package != nil && p.Package.GoPackage != nil {
		qf = types.RelativeTo(p.Package.GoPackage)
	}

	typeString := func(t types.Type) string {
		if t == nil {
			return ""
		}

		return types.TypeString(t, qf)
	}

	r := Report{Output: p.Output}
	if p.Package != nil {
		r.Package = p.Package.Path
	}

	for _, c := range p.Cursors {
		cr := CursorReport{
			Type:         c.Name(),
			Category:     c.Category.String(),
			Capabilities: c.Primitives.Caps.Names(),
			RefType:      typeString(c.RefType),
			ElemType:     typeString(c.ElemType),
			OffsetType:   typeString(c.OffsetType),
		}

		for _, op := range c.Operations {
			cr.Operations = append(cr.Operations, OperationReport{
				Method:      op.Op.Method(),
				Symbol:      op.Op.Symbol(),
				Strategy:    op.Strategy.String(),
				Explanation: op.Explanation,
			})
		}

		r.Cursors = append(r.Cursors, cr)
	}

	for _, d := range p.Diagnostics.All() {
		r.Diagnostics = append(r.Diagnostics, d.String())
	}

	return r
}

// ExportReportYAML renders the report of a resolved plan as YAML.
func ExportReportYAML(p *ResolvedCursorPlan) ([]byte, error) {
	return yaml.Marshal(BuildReport(p))
}

// ExportConfig builds a configuration that pins every resolved cursor to
// its detected category and offset type, so that a later change that
// weakens a cursor fails generation.
func ExportConfig(p *ResolvedCursorPlan, pkg string) *config.File {
	f := &config.File{
		Version: config.DefaultVersion,
		Package: pkg,
		Output:  config.DefaultOutput,
		Options: p.Options,
	}

	var qf types.Qualifier
	if p.Package != nil && p.Package.GoPackage != nil {
		qf = types.RelativeTo(p.Package.GoPackage)
	}

	for _, c := range p.Cursors {
		spec := c.Spec
		spec.Require = c.Category.String()

		if spec.DifferenceType == "" && c.Primitives.DistanceType == nil {
			spec.DifferenceType = types.TypeString(c.OffsetType, qf)
		}

		f.Cursors = append(f.Cursors, spec)
	}

	return f
}
