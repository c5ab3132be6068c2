package column

import "github.com/arloliu/featenc/format"

// Action is the conversion chosen for a column.
type Action uint8

const (
	ActionPassThrough Action = iota // ActionPassThrough leaves the value unconverted.
	ActionScalar                    // ActionScalar encodes one string to one id.
	ActionSequence                  // ActionSequence encodes a string sequence to ids.
	ActionSparse                    // ActionSparse encodes NTV entries to a sparse vector.
	ActionDense                     // ActionDense encodes NTV entries to a dense vector.
)

func (a Action) String() string {
	switch a {
	case ActionPassThrough:
		return "pass-through"
	case ActionScalar:
		return "scalar"
	case ActionSequence:
		return "sequence"
	case ActionSparse:
		return "sparse"
	case ActionDense:
		return "dense"
	default:
		return "unknown"
	}
}

// Converts reports whether the action needs a vocabulary.
func (a Action) Converts() bool {
	return a != ActionPassThrough
}

// Spec declares the shape of a feature column and the tensor it feeds.
type Spec struct {
	Name   string
	Kind   format.ColumnKind
	Output format.OutputType
	Sparse bool
}

// Plan selects the conversion for a column:
//
//	| Kind           | Output          | Action      |
//	|----------------|-----------------|-------------|
//	| string         | int32/int64     | scalar      |
//	| string_array   | int32/int64     | sequence    |
//	| ntv_array      | any, sparse     | sparse      |
//	| ntv_array      | any, not sparse | dense       |
//	| string(_array) | non-integer     | pass-through|
//
// Any other kind fails with an *UnsupportedColumnTypeError naming the column.
// Pass-through is a configuration mismatch, not an error.
func Plan(spec Spec) (Action, error) {
	switch spec.Kind {
	case format.KindString:
		if spec.Output.IsInteger() {
			return ActionScalar, nil
		}

		return ActionPassThrough, nil
	case format.KindStringSequence:
		if spec.Output.IsInteger() {
			return ActionSequence, nil
		}

		return ActionPassThrough, nil
	case format.KindNTVSequence:
		if spec.Sparse {
			return ActionSparse, nil
		}

		return ActionDense, nil
	default:
		return ActionPassThrough, &UnsupportedColumnTypeError{Column: spec.Name, Kind: spec.Kind, Output: spec.Output}
	}
}
