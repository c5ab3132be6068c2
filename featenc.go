// Package featenc converts categorical feature columns into the numeric
// representations consumed by ML models.
//
// Every feature column is encoded against a vocabulary built beforehand:
// a token list whose zero-based position is the token id. Three column
// shapes are supported:
//
//   - a single optional string, encoded to one id
//   - a sequence of strings, encoded to a sequence of ids
//   - a sequence of name/term/value triples (NTV), encoded to a sparse or
//     dense vector of weights
//
// Tokens missing from the vocabulary map to a reserved index one past the
// vocabulary (the unknown slot), or are dropped when DiscardUnknownEntries
// is set, in which case the last vocabulary slot doubles as the null index.
//
// # Basic Usage
//
//	v := vocab.New("country", []string{"us", "fr", "de"})
//	spec := column.Spec{Name: "country", Kind: format.KindString, Output: format.OutputInt64}
//
//	id, err := featenc.EncodeColumn("fr", v, spec, featenc.Flags{})
//	// id == int64(1)
//
//	id, err = featenc.EncodeColumn("jp", v, spec, featenc.Flags{})
//	// id == int64(3), the unknown slot
//
// # Package Structure
//
// This package is a thin entry point over the column package. For batch
// work, load vocabularies with vocab.LoadAll and encode whole records with
// a record.Transformer, which plans each column once. The encoding package
// holds the encoders themselves.
package featenc

import (
	"github.com/arloliu/featenc/column"
	"github.com/arloliu/featenc/vocab"
)

// Flags are the job-wide encoding switches.
type Flags struct {
	// DiscardUnknownEntries drops tokens missing from the vocabulary instead
	// of mapping them to the unknown slot.
	DiscardUnknownEntries bool
	// EnableFilterZero removes zero-valued entries from sparse NTV vectors.
	EnableFilterZero bool
}

func (f Flags) options() []column.Option {
	return []column.Option{
		column.WithDiscardUnknown(f.DiscardUnknownEntries),
		column.WithFilterZero(f.EnableFilterZero),
	}
}

// NewConverter plans spec once and returns a reusable converter bound to v
// and flags. Prefer it over EncodeColumn when encoding many values of the
// same column.
//
// Returns an error matching column.ErrUnsupportedColumnType for column kinds
// that cannot be encoded.
func NewConverter(spec column.Spec, v *vocab.Vocabulary, flags Flags, opts ...column.Option) (*column.Converter, error) {
	return column.NewConverter(spec, v, append(flags.options(), opts...)...)
}

// EncodeColumn encodes one raw column value.
//
// Parameters:
//   - value: the raw value; nil, string or *string for string columns,
//     a string slice for sequence columns, an NTV slice (or decoded JSON
//     objects with name, term and value keys) for NTV columns
//   - v: the column vocabulary; may be nil for pass-through columns
//   - spec: the column kind, declared output type and sparsity
//   - flags: unknown-token and zero-filter policy
//
// Returns:
//   - any: int32/int64 for scalar columns, []int32/[]int64 for sequence
//     columns, encoding.SparseVector or encoding.DenseVector for NTV
//     columns, and value itself for columns passed through unconverted
//   - error: column.ErrUnsupportedColumnType, column.ErrNilVocabulary or
//     column.ErrValueShape
func EncodeColumn(value any, v *vocab.Vocabulary, spec column.Spec, flags Flags) (any, error) {
	conv, err := NewConverter(spec, v, flags)
	if err != nil {
		return nil, err
	}

	return conv.Convert(value)
}
