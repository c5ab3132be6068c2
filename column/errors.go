package column

import (
	"errors"
	"fmt"

	"github.com/arloliu/featenc/format"
)

var (
	// ErrUnsupportedColumnType is matched by errors.Is for every *UnsupportedColumnTypeError.
	ErrUnsupportedColumnType = errors.New("unsupported column type")
	// ErrValueShape is returned when a raw value does not have the Go shape of its planned column.
	ErrValueShape = errors.New("value does not match column shape")
	// ErrNilVocabulary is returned when a converting column is built without a vocabulary.
	ErrNilVocabulary = errors.New("nil vocabulary")
)

// UnsupportedColumnTypeError reports a column whose shape matches none of the
// encodable patterns.
type UnsupportedColumnTypeError struct {
	Column string
	Kind   format.ColumnKind
	Output format.OutputType
}

func (e *UnsupportedColumnTypeError) Error() string {
	return fmt.Sprintf("%s: column %q (kind %s, output %s)", ErrUnsupportedColumnType, e.Column, e.Kind, e.Output)
}

// Is makes errors.Is(err, ErrUnsupportedColumnType) succeed.
func (e *UnsupportedColumnTypeError) Is(target error) bool {
	return target == ErrUnsupportedColumnType
}
