package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursor-generator/internal/analyze"
	"cursor-generator/internal/diagnostic"
)

func TestValidate_Valid(t *testing.T) {
	f := NewFile(".", []string{"cityCursor", "tokenCursor"}, "", "", "")

	diags := Validate(f)
	assert.True(t, diags.IsValid(), diags.Error())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "no cursors",
			yaml:     "package: .\n",
			wantCode: diagnostic.CodeInvalidConfig,
			wantMsg:  "no cursors",
		},
		{
			name:     "duplicate",
			yaml:     "cursors:\n  - type: a\n  - type: a\n",
			wantCode: diagnostic.CodeDuplicateCursor,
			wantMsg:  "more than once",
		},
		{
			name:     "empty type",
			yaml:     "cursors:\n  - value_type: int\n",
			wantCode: diagnostic.CodeInvalidConfig,
			wantMsg:  "has no type",
		},
		{
			name:     "unknown category",
			yaml:     "cursors:\n  - type: a\n    require: sideways\n",
			wantCode: diagnostic.CodeInvalidConfig,
			wantMsg:  "sideways",
		},
		{
			name:     "bad version",
			yaml:     "version: \"2\"\ncursors:\n  - type: a\n",
			wantCode: diagnostic.CodeInvalidConfig,
			wantMsg:  "unsupported config version",
		},
		{
			name:     "output with directory",
			yaml:     "output: gen/cursor.go\ncursors:\n  - type: a\n",
			wantCode: diagnostic.CodeInvalidConfig,
			wantMsg:  "without directories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			diags := Validate(f)
			require.True(t, diags.HasErrors())
			assert.Equal(t, tt.wantCode, diags.Errors[0].Code)
			assert.Contains(t, diags.Errors[0].Message, tt.wantMsg)
		})
	}
}

func TestValidate_UnknownCategorySuggestsNames(t *testing.T) {
	f := NewFile(".", []string{"a"}, "", "", "random")

	diags := Validate(f)
	require.Len(t, diags.Errors, 1)
	assert.Contains(t, diags.Errors[0].Suggestions, "random_access")
}

func TestValidate_Nil(t *testing.T) {
	diags := Validate(nil)
	assert.True(t, diags.HasErrors())
}

func TestResolveCursorType(t *testing.T) {
	graph := analyze.NewTypeGraph()
	id := analyze.TypeID{PkgPath: "example.com/p", Name: "walker"}
	graph.Types[id] = &analyze.TypeInfo{ID: id, Kind: analyze.TypeKindStruct}
	graph.Packages["example.com/p"] = &analyze.PackageInfo{
		Path:  "example.com/p",
		Types: []analyze.TypeID{id, {PkgPath: "example.com/p", Name: "Alpha"}},
	}

	assert.NotNil(t, ResolveCursorType("walker", "example.com/p", graph))
	assert.Nil(t, ResolveCursorType("walker", "example.com/q", graph))
	assert.Nil(t, ResolveCursorType("", "example.com/p", graph))
	assert.Nil(t, ResolveCursorType("walker", "example.com/p", nil))

	assert.Equal(t, []string{"Alpha", "walker"}, PackageTypeNames("example.com/p", graph))
	assert.Nil(t, PackageTypeNames("example.com/q", graph))
}
