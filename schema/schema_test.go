package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/featenc/column"
	"github.com/arloliu/featenc/encoding"
	"github.com/arloliu/featenc/format"
)

const sampleSchema = `
columns:
  - name: country
    kind: string
    output: long
  - name: tags
    kind: string_array
    output: int32
  - name: terms
    kind: ntv_array
    output: float32
    sparse: true
  - name: price
    kind: decimal
    output: float64
`

func TestParse(t *testing.T) {
	specs, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)
	require.Equal(t, []column.Spec{
		{Name: "country", Kind: format.KindString, Output: format.OutputInt64},
		{Name: "tags", Kind: format.KindStringSequence, Output: format.OutputInt32},
		{Name: "terms", Kind: format.KindNTVSequence, Output: format.OutputFloat32, Sparse: true},
		{Name: "price", Kind: format.KindUnknown, Output: format.OutputFloat64},
	}, specs)

	_, err = column.Plan(specs[3])
	require.ErrorIs(t, err, column.ErrUnsupportedColumnType)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"not yaml":       "columns: [",
		"missing name":   "columns:\n  - kind: string\n",
		"duplicate":      "columns:\n  - name: a\n    kind: string\n  - name: a\n    kind: string\n",
		"unknown output": "columns:\n  - name: a\n    kind: string\n    output: decimal\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestLoadAndMarshal(t *testing.T) {
	specs := []column.Spec{
		{Name: "country", Kind: format.KindString, Output: format.OutputInt64},
		{Name: "terms", Kind: format.KindNTVSequence, Output: format.OutputFloat32, Sparse: true},
	}
	data, err := Marshal(specs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, specs, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInfer(t *testing.T) {
	s := "x"
	tests := []struct {
		name   string
		sample any
		want   format.ColumnKind
	}{
		{"string", "us", format.KindString},
		{"string pointer", &s, format.KindString},
		{"string slice", []string{"a"}, format.KindStringSequence},
		{"json string array", []any{nil, "a"}, format.KindStringSequence},
		{"empty array", []any{}, format.KindStringSequence},
		{"ntv slice", []encoding.NTV{encoding.NewTextNTV("n", "t")}, format.KindNTVSequence},
		{"json ntv array", []any{map[string]any{"name": "n", "term": "t"}}, format.KindNTVSequence},
		{"json object array", []any{map[string]any{"k": "v"}}, format.KindUnknown},
		{"number", 3.5, format.KindUnknown},
		{"number array", []any{1.0}, format.KindUnknown},
		{"null", nil, format.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Infer("col", tt.sample, format.OutputInt64, false)
			require.Equal(t, tt.want, spec.Kind)
			require.Equal(t, "col", spec.Name)
			require.Equal(t, format.OutputInt64, spec.Output)
		})
	}
}
