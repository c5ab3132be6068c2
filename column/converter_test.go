package column

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/featenc/encoding"
	"github.com/arloliu/featenc/format"
	"github.com/arloliu/featenc/vocab"
)

func newConverter(t *testing.T, spec Spec, v *vocab.Vocabulary, opts ...Option) *Converter {
	t.Helper()

	c, err := NewConverter(spec, v, opts...)
	require.NoError(t, err)

	return c
}

func abVocab() *vocab.Vocabulary {
	return vocab.New("col", []string{"a", "b"})
}

func ntvVocab() *vocab.Vocabulary {
	return vocab.New("ntv", []string{"n1,t1", "n2,t2"})
}

func TestConverter_Scalar(t *testing.T) {
	c := newConverter(t, Spec{Name: "col", Kind: format.KindString, Output: format.OutputInt64}, abVocab())
	require.Equal(t, ActionScalar, c.Action())
	require.Equal(t, 0, c.Width())

	for raw, want := range map[any]int64{"a": 0, "b": 1, "c": 2} {
		got, err := c.Convert(raw)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	got, err := c.Convert(nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	s := "b"
	got, err = c.Convert(&s)
	require.NoError(t, err)
	require.Equal(t, int64(1), got)

	_, err = c.Convert(42)
	require.ErrorIs(t, err, ErrValueShape)
	require.ErrorContains(t, err, `column "col"`)
}

func TestConverter_ScalarInt32WithDiscard(t *testing.T) {
	c := newConverter(t, Spec{Name: "col", Kind: format.KindString, Output: format.OutputInt32}, abVocab(),
		WithDiscardUnknown(true))

	got, err := c.Convert("zzz")
	require.NoError(t, err)
	require.Equal(t, int32(1), got)
}

func TestConverter_Sequence(t *testing.T) {
	spec := Spec{Name: "tags", Kind: format.KindStringSequence, Output: format.OutputInt64}

	keep := newConverter(t, spec, abVocab())
	got, err := keep.Convert([]string{"a", "z", "b"})
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 1}, got)

	drop := newConverter(t, spec, abVocab(), WithDiscardUnknown(true))
	got, err = drop.Convert([]any{"a", "z", nil, "b"})
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, got)

	got, err = keep.Convert(nil)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, got)

	_, err = keep.Convert([]any{"a", 3})
	require.ErrorIs(t, err, ErrValueShape)

	_, err = keep.Convert("a")
	require.ErrorIs(t, err, ErrValueShape)

	spec.Output = format.OutputInt32
	narrow := newConverter(t, spec, abVocab())
	got, err = narrow.Convert([]string{"b", "a"})
	require.NoError(t, err)
	require.Equal(t, []int32{1, 0}, got)
}

func TestConverter_NTVSparse(t *testing.T) {
	spec := Spec{Name: "ntv", Kind: format.KindNTVSequence, Output: format.OutputFloat32, Sparse: true}
	c := newConverter(t, spec, ntvVocab())
	require.Equal(t, 3, c.Width())

	got, err := c.Convert([]encoding.NTV{encoding.NewNTV("n1", "t1", 0.5), encoding.NewTextNTV("n3", "t3")})
	require.NoError(t, err)
	require.Equal(t, encoding.SparseVector{Size: 3, Indices: []int64{0, 2}, Values: []float64{0.5, 1}}, got)

	got, err = c.Convert(nil)
	require.NoError(t, err)
	require.Equal(t, encoding.SparseVector{Size: 3, Indices: []int64{2}, Values: []float64{0}}, got)

	filtered := newConverter(t, spec, ntvVocab(), WithFilterZero(true))
	got, err = filtered.Convert(nil)
	require.NoError(t, err)
	sv, ok := got.(encoding.SparseVector)
	require.True(t, ok)
	require.Empty(t, sv.Indices)
}

func TestConverter_NTVDenseFromJSON(t *testing.T) {
	var raw any
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"n1","term":"t1","value":0.5},{"name":"n3","term":"t3"}]`), &raw))

	c := newConverter(t, Spec{Name: "ntv", Kind: format.KindNTVSequence}, ntvVocab())
	got, err := c.Convert(raw)
	require.NoError(t, err)
	require.Equal(t, encoding.DenseVector{Values: []float64{0.5, 0, 1}}, got)

	dc := newConverter(t, Spec{Name: "ntv", Kind: format.KindNTVSequence}, ntvVocab(), WithDiscardUnknown(true))
	require.Equal(t, 2, dc.Width())
	got, err = dc.Convert(raw)
	require.NoError(t, err)
	require.Equal(t, encoding.DenseVector{Values: []float64{0.5, 0}}, got)
}

func TestConverter_NTVShapes(t *testing.T) {
	c := newConverter(t, Spec{Name: "ntv", Kind: format.KindNTVSequence, Sparse: true}, ntvVocab())

	got, err := c.Convert([]map[string]any{{"name": "n2", "term": "t2", "value": json.Number("2.5")}})
	require.NoError(t, err)
	require.Equal(t, []float64{2.5}, got.(encoding.SparseVector).Values)

	got, err = c.Convert([]any{encoding.NewNTV("n2", "t2", 3), nil, map[string]any{"name": "n1", "term": "t1", "value": 4}})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 0}, got.(encoding.SparseVector).Indices)

	_, err = c.Convert([]any{map[string]any{"name": 1, "term": "t1"}})
	require.ErrorIs(t, err, ErrValueShape)

	_, err = c.Convert([]any{map[string]any{"name": "n1", "term": "t1", "value": "high"}})
	require.ErrorIs(t, err, ErrValueShape)

	_, err = c.Convert([]string{"n1,t1"})
	require.ErrorIs(t, err, ErrValueShape)
}

func TestConverter_PassThrough(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	c := newConverter(t, Spec{Name: "label", Kind: format.KindString, Output: format.OutputFloat32}, nil,
		WithLogger(logger))
	require.Equal(t, ActionPassThrough, c.Action())
	require.Nil(t, c.Vocabulary())
	require.Contains(t, logs.String(), "passed through unconverted")
	require.Contains(t, logs.String(), "column=label")

	got, err := c.Convert("raw value")
	require.NoError(t, err)
	require.Equal(t, "raw value", got)
}

func TestNewConverter_Errors(t *testing.T) {
	_, err := NewConverter(Spec{Name: "price", Kind: format.KindUnknown}, abVocab())
	require.ErrorIs(t, err, ErrUnsupportedColumnType)

	_, err = NewConverter(Spec{Name: "country", Kind: format.KindString, Output: format.OutputInt64}, nil)
	require.ErrorIs(t, err, ErrNilVocabulary)
}
