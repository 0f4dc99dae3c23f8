package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursor-generator/internal/analyze"
	"cursor-generator/internal/config"
	"cursor-generator/internal/plan"
)

func resolveSource(t *testing.T, src string, specs ...config.CursorSpec) *plan.ResolvedCursorPlan {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadSource("fixture.go", src)
	require.NoError(t, err)

	file := config.NewFile(".", nil, "", "", "")
	file.Cursors = specs

	p, err := plan.NewResolver(graph, file, "fixture", plan.DefaultConfig()).Resolve()
	require.NoError(t, err)
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

	return p
}

func generateSource(t *testing.T, cfg GeneratorConfig, src string, specs ...config.CursorSpec) string {
	t.Helper()

	file, err := NewGenerator(cfg).Generate(resolveSource(t, src, specs...))
	require.NoError(t, err)

	return string(file.Content)
}

// TestGenerator_Examples regenerates every example package and compares the
// result with the committed file.
func TestGenerator_Examples(t *testing.T) {
	for _, name := range []string{"cities", "tokens", "ring", "stride"} {
		t.Run(name, func(t *testing.T) {
			dir, err := filepath.Abs(filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)

			f, err := config.LoadFile(filepath.Join(dir, "cursor.yaml"))
			require.NoError(t, err)

			pkgPath := "cursor-generator/examples/" + name

			graph, err := analyze.NewAnalyzer().LoadPackages(pkgPath)
			require.NoError(t, err)

			p, err := plan.NewResolver(graph, f, pkgPath, plan.DefaultConfig()).Resolve()
			require.NoError(t, err)
			require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

			file, err := NewGenerator(ConfigFromOptions(p.Options)).Generate(p)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "cursor_gen.go"), file.Path())

			want, err := os.ReadFile(file.Path())
			require.NoError(t, err)

			if !assert.Equal(t, string(want), string(file.Content)) {
				t.Log(spew.Sdump(p.Cursors[0].Operations))
			}
		})
	}
}

const cityFixture = `package fixture

type City int

type cityCursor struct{ pos int }

func (c cityCursor) Dereference() City           { return City(c.pos) }
func (c *cityCursor) Advance(n int)              { c.pos += n }
func (c cityCursor) DistanceTo(o cityCursor) int { return o.pos - c.pos }
`

func TestGenerator_RandomAccess(t *testing.T) {
	out := generateSource(t, DefaultGeneratorConfig(), cityFixture, config.CursorSpec{Type: "cityCursor"})

	assert.True(t, strings.HasPrefix(out, "// Code generated by cursor-generator. DO NOT EDIT.\n"))
	assert.Contains(t, out, "\t\"cmp\"\n")
	assert.Contains(t, out, "type cityCursorElem = City\n")
	assert.Contains(t, out, "type cityCursorOffset = int\n")
	assert.Contains(t, out, "var _ cursor.RandomAccess[cityCursor, City, int] = (*cityCursor)(nil)\n")
	assert.Contains(t, out, "func (cityCursor) Category() cursor.Category {\n\treturn cursor.CategoryRandomAccess\n}")
	assert.Contains(t, out, "func (c *cityCursor) Next() *cityCursor {\n\treturn c.Skip(1)\n}")
	assert.Contains(t, out, "func (c cityCursor) Equal(o cityCursor) bool {\n\treturn c.DistanceTo(o) == 0\n}")
	assert.Contains(t, out, "return cmp.Compare(c.Diff(o), 0)")

	// Dependencies are declared before their dependents.
	assert.Less(t, strings.Index(out, ") Skip("), strings.Index(out, ") Add("))
	assert.Less(t, strings.Index(out, ") Diff("), strings.Index(out, ") Less("))
}

func TestGenerator_Options(t *testing.T) {
	cfg := GeneratorConfig{}
	out := generateSource(t, cfg, cityFixture, config.CursorSpec{Type: "cityCursor"})

	assert.NotContains(t, out, "var _ ")
	assert.NotContains(t, out, "cityCursorElem")
	assert.NotContains(t, out, "// Get returns")
	assert.Equal(t, 1, strings.Count(out, "//"))
	assert.Contains(t, out, "func (c cityCursor) Less(o cityCursor) bool {")
}

func TestGenerator_ConfigFromOptions(t *testing.T) {
	assert.Equal(t, DefaultGeneratorConfig(), ConfigFromOptions(config.Options{}))

	cfg := ConfigFromOptions(config.Options{Assertions: config.Bool(false)})
	assert.False(t, cfg.GenerateAssertions)
	assert.True(t, cfg.GenerateComments)
	assert.True(t, cfg.GenerateMetadata)
}

func TestGenerator_AdvanceConversion(t *testing.T) {
	src := `package fixture

type strideCursor struct{ data []float64; pos int }

func (c strideCursor) Dereference() float64           { return c.data[c.pos] }
func (c *strideCursor) Advance(n int64)               { c.pos += int(n) }
func (c strideCursor) EqualTo(o strideCursor) bool    { return c.pos == o.pos }
`
	out := generateSource(t, DefaultGeneratorConfig(), src, config.CursorSpec{Type: "strideCursor"})

	assert.Contains(t, out, "func (c *strideCursor) Skip(n int) *strideCursor {\n\tc.Advance(int64(n))\n\treturn c\n}")
	assert.Contains(t, out, "return c.EqualTo(o)\n")
	assert.NotContains(t, out, "\"cmp\"")
	assert.NotContains(t, out, ") Diff(")
}

func TestGenerator_EqualToNamedBool(t *testing.T) {
	src := `package fixture

type truth bool

type walker struct{ pos int }

func (w walker) Dereference() int          { return w.pos }
func (w *walker) Increment()               { w.pos++ }
func (w walker) EqualTo(o walker) truth    { return w.pos == o.pos }
`
	out := generateSource(t, DefaultGeneratorConfig(), src, config.CursorSpec{Type: "walker"})

	assert.Contains(t, out, "return bool(c.EqualTo(o))\n")
	assert.Contains(t, out, "return cursor.CategoryForward\n")
}

func TestGenerator_ImportedElement(t *testing.T) {
	src := `package fixture

import "time"

type ticker struct{ at time.Duration }

func (t ticker) Dereference() time.Duration { return t.at }
func (t *ticker) Increment()                { t.at += time.Second }
`
	out := generateSource(t, DefaultGeneratorConfig(), src, config.CursorSpec{Type: "ticker"})

	assert.Contains(t, out, "\t\"time\"\n")
	assert.Contains(t, out, "func (c ticker) Get() time.Duration {")
	assert.Contains(t, out, "func (c ticker) Ptr() *time.Duration {\n\tv := c.Dereference()\n\treturn &v\n}")
	assert.Contains(t, out, "type tickerElem = time.Duration\n")
}

func TestGenerator_ImportAvoidsPackageNames(t *testing.T) {
	src := `package fixture

var cursor = "shadow"

func cmp() {}

type pos struct{ i int }

func (p pos) Dereference() int    { return p.i }
func (p *pos) Advance(n int)      { p.i += n }
func (p pos) DistanceTo(o pos) int { return o.i - p.i }
`
	out := generateSource(t, DefaultGeneratorConfig(), src, config.CursorSpec{Type: "pos"})

	assert.Contains(t, out, "\tcmp2 \"cmp\"\n")
	assert.Contains(t, out, "\tcursor2 \"cursor-generator/cursor\"\n")
	assert.Contains(t, out, "return cmp2.Compare(c.Diff(o), 0)")
	assert.Contains(t, out, "func (pos) Category() cursor2.Category {")
}

func TestGenerator_Generic(t *testing.T) {
	src := `package fixture

type Ring[T any] struct{ buf []T; pos int }

func (r Ring[E]) Dereference() *E       { return &r.buf[r.pos%len(r.buf)] }
func (r *Ring[E]) Increment()           { r.pos++ }
func (r *Ring[E]) Decrement()           { r.pos-- }
func (r Ring[E]) EqualTo(o Ring[E]) bool { return r.pos == o.pos }
`
	graph, err := analyze.NewAnalyzer().LoadSource("fixture.go", src)
	require.NoError(t, err)

	file := config.NewFile(".", []string{"Ring"}, "", "", "")
	p, err := plan.NewResolver(graph, file, "fixture", plan.DefaultConfig()).Resolve()
	require.NoError(t, err)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())

	gf, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	out := string(gf.Content)
	assert.NotContains(t, out, "var _ ")
	assert.NotContains(t, out, "RingElem")
	assert.Contains(t, out, "func (Ring[E]) Category() cursor.Category {")
	assert.Contains(t, out, "func (c Ring[E]) Ptr() *E {\n\treturn c.Dereference()\n}")
	assert.Contains(t, out, "func (c *Ring[E]) PostPrev() Ring[E] {")
}

func TestGenerator_MultipleCursors(t *testing.T) {
	src := cityFixture + `
type tokenCursor struct{ toks []string; i int }

func (c tokenCursor) Dereference() string { return c.toks[c.i] }
func (c *tokenCursor) Increment()         { c.i++ }
`
	out := generateSource(t, DefaultGeneratorConfig(), src,
		config.CursorSpec{Type: "tokenCursor"},
		config.CursorSpec{Type: "cityCursor"},
	)

	assert.Less(t, strings.Index(out, "func (tokenCursor) Category()"), strings.Index(out, "func (cityCursor) Category()"))
	assert.Equal(t, 1, strings.Count(out, "import ("))
}

func TestGenerator_RejectsPlanWithErrors(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadSource("fixture.go", cityFixture)
	require.NoError(t, err)

	file := config.NewFile(".", []string{"missingCursor"}, "", "", "")
	p, err := plan.NewResolver(graph, file, "fixture", plan.DefaultConfig()).Resolve()
	require.NoError(t, err)
	require.True(t, p.Diagnostics.HasErrors())

	_, err = NewGenerator(DefaultGeneratorConfig()).Generate(p)
	assert.Error(t, err)

	_, err = NewGenerator(DefaultGeneratorConfig()).Generate(nil)
	assert.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	file := &GeneratedFile{Filename: "cursor_gen.go", Dir: dir, Content: []byte("package x\n")}

	require.NoError(t, WriteFiles(file))

	got, err := os.ReadFile(filepath.Join(dir, "cursor_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(got))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	p, err := writeDebugUnformatted(dir, "cursor_gen.go", []byte("package x\nfunc {"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cursor_gen.unformatted.go"), p)

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "package x\nfunc {", string(got))

	p, err = writeDebugUnformatted("", "cursor_gen.go", nil)
	require.NoError(t, err)
	assert.Empty(t, p)
}
