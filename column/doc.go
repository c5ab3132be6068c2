// Package column decides how each feature column is converted and applies
// that decision to raw record values.
//
// A Spec declares the column kind (string, string sequence, NTV sequence),
// the numeric type of the output tensor and whether NTV columns are sparse.
// Plan maps a Spec to an Action; NewConverter binds the Action to the
// column's vocabulary and encoding flags:
//
//	conv, err := column.NewConverter(column.Spec{
//		Name:   "country",
//		Kind:   format.KindString,
//		Output: format.OutputInt64,
//	}, countryVocab, column.WithDiscardUnknown(false))
//	if err != nil {
//		return err
//	}
//	id, err := conv.Convert("de") // int64
//
// String columns declared with a non-integer output type are passed through
// unconverted with a logged warning. Column kinds that cannot be encoded fail
// with ErrUnsupportedColumnType before any record is processed.
package column
