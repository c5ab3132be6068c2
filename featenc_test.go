package featenc

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/featenc/column"
	"github.com/arloliu/featenc/encoding"
	"github.com/arloliu/featenc/format"
	"github.com/arloliu/featenc/vocab"
)

var (
	scalarSpec   = column.Spec{Name: "s", Kind: format.KindString, Output: format.OutputInt64}
	sequenceSpec = column.Spec{Name: "q", Kind: format.KindStringSequence, Output: format.OutputInt64}
	denseSpec    = column.Spec{Name: "n", Kind: format.KindNTVSequence, Output: format.OutputFloat32}
	sparseSpec   = column.Spec{Name: "n", Kind: format.KindNTVSequence, Output: format.OutputFloat32, Sparse: true}
)

func abVocab() *vocab.Vocabulary {
	return vocab.New("s", []string{"a", "b"})
}

func ntvVocab() *vocab.Vocabulary {
	return vocab.New("n", []string{encoding.NTVToken("n1", "t1"), encoding.NTVToken("n2", "t2")})
}

func encode(t *testing.T, value any, v *vocab.Vocabulary, spec column.Spec, flags Flags) any {
	t.Helper()

	out, err := EncodeColumn(value, v, spec, flags)
	require.NoError(t, err)

	return out
}

func TestEncodeColumn_ScalarScenario(t *testing.T) {
	v := abVocab()

	require.Equal(t, int64(2), encode(t, "c", v, scalarSpec, Flags{}))
	require.Equal(t, int64(2), encode(t, nil, v, scalarSpec, Flags{}))
	require.Equal(t, int64(0), encode(t, "a", v, scalarSpec, Flags{}))
}

func TestEncodeColumn_SequenceScenario(t *testing.T) {
	v := abVocab()
	in := []string{"a", "z", "b"}

	require.Equal(t, []int64{0, 2, 1}, encode(t, in, v, sequenceSpec, Flags{}))
	require.Equal(t, []int64{0, 1}, encode(t, in, v, sequenceSpec, Flags{DiscardUnknownEntries: true}))
	require.Equal(t, []int64{2}, encode(t, nil, v, sequenceSpec, Flags{}))
}

func TestEncodeColumn_NTVScenarios(t *testing.T) {
	v := ntvVocab()
	in := []encoding.NTV{
		encoding.NewNTV("n1", "t1", 0.5),
		encoding.NewTextNTV("n3", "t3"),
	}

	require.Equal(t,
		[]encoding.IdValue{{ID: 0, Value: 0.5}, {ID: 2, Value: 1.0}},
		encoding.EncodeNTV(in, v, false))
	require.Equal(t,
		[]encoding.IdValue{{ID: 2, Value: 0.0}},
		encoding.EncodeNTV(nil, v, false))

	require.Equal(t,
		encoding.DenseVector{Values: []float64{0.5, 0.0, 1.0}},
		encode(t, in, v, denseSpec, Flags{}))
	require.Equal(t,
		encoding.SparseVector{Size: 3, Indices: []int64{0, 2}, Values: []float64{0.5, 1.0}},
		encode(t, in, v, sparseSpec, Flags{}))
	require.Equal(t,
		encoding.SparseVector{Size: 3, Indices: []int64{}, Values: []float64{}},
		encode(t, []encoding.NTV{}, v, sparseSpec, Flags{EnableFilterZero: true}))
}

func TestEncodeColumn_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	spec := column.Spec{Name: "label", Kind: format.KindString, Output: format.OutputString}
	out, err := EncodeColumn("positive", nil, spec, Flags{})
	require.NoError(t, err)
	require.Equal(t, "positive", out)
	require.Contains(t, buf.String(), "passed through unconverted")
}

func TestEncodeColumn_Errors(t *testing.T) {
	_, err := EncodeColumn("a", abVocab(), column.Spec{Name: "x", Kind: format.KindUnknown}, Flags{})
	require.ErrorIs(t, err, column.ErrUnsupportedColumnType)

	_, err = EncodeColumn("a", nil, scalarSpec, Flags{})
	require.ErrorIs(t, err, column.ErrNilVocabulary)

	_, err = EncodeColumn([]string{"a"}, abVocab(), scalarSpec, Flags{})
	require.ErrorIs(t, err, column.ErrValueShape)
}

func TestNewConverter(t *testing.T) {
	conv, err := NewConverter(sparseSpec, ntvVocab(), Flags{DiscardUnknownEntries: true},
		column.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	require.Equal(t, column.ActionSparse, conv.Action())
	require.Equal(t, 2, conv.Width())

	out, err := conv.Convert([]encoding.NTV{encoding.NewTextNTV("n3", "t3")})
	require.NoError(t, err)
	require.Equal(t, encoding.SparseVector{Size: 2, Indices: []int64{1}, Values: []float64{0}}, out)
}
