package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cursor-generator/internal/config"
)

func TestBuildReport(t *testing.T) {
	plan := resolveSource(t, cityFixture, config.CursorSpec{Type: "cityCursor"})

	r := BuildReport(plan)
	assert.Equal(t, "fixture", r.Package)
	require.Len(t, r.Cursors, 1)

	c := r.Cursors[0]
	assert.Equal(t, "random_access", c.Category)
	assert.Equal(t, []string{"dereference", "advance", "distance_to"}, c.Capabilities)
	assert.Equal(t, "City", c.RefType)
	assert.Equal(t, "City", c.ElemType)
	assert.Equal(t, "int", c.OffsetType)
	require.Len(t, c.Operations, 16)
	assert.Equal(t, OperationReport{
		Method:      "Equal",
		Symbol:      "x == y",
		Strategy:    "zero_distance",
		Explanation: "no EqualTo; DistanceTo is zero",
	}, c.Operations[OpEqual])
	assert.Empty(t, r.Diagnostics)
}

func TestExportReportYAML(t *testing.T) {
	plan := resolveSource(t, cityFixture, config.CursorSpec{Type: "cityCursor"})

	data, err := ExportReportYAML(plan)
	require.NoError(t, err)

	var back Report
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, BuildReport(plan), back)
}

func TestExportConfig(t *testing.T) {
	src := `package fixture

type walker struct{ pos int }

func (w walker) Dereference() int   { return w.pos }
func (w *walker) Advance(n int32)   { w.pos += int(n) }
func (w walker) EqualTo(o walker) bool { return w.pos == o.pos }
`
	plan := resolveSource(t, src+"\n"+cityFixture[len("package fixture\n"):],
		config.CursorSpec{Type: "walker", DifferenceType: "int32"},
		config.CursorSpec{Type: "cityCursor"},
	)
	require.True(t, plan.Diagnostics.IsValid(), plan.Diagnostics.Error())

	f := ExportConfig(plan, ".")
	assert.Equal(t, config.DefaultVersion, f.Version)
	assert.Equal(t, ".", f.Package)
	require.Len(t, f.Cursors, 2)

	assert.Equal(t, config.CursorSpec{Type: "walker", DifferenceType: "int32", Require: "forward"}, f.Cursors[0])
	assert.Equal(t, config.CursorSpec{Type: "cityCursor", Require: "random_access"}, f.Cursors[1])

	require.NotNil(t, config.Validate(f))
	assert.True(t, config.Validate(f).IsValid())
}
