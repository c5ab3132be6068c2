package schema

import (
	"github.com/arloliu/featenc/column"
	"github.com/arloliu/featenc/encoding"
	"github.com/arloliu/featenc/format"
)

// Infer derives a column spec from a sample value.
//
// Strings infer KindString, sequences of strings KindStringSequence, and
// sequences of NTV entries (encoding.NTV values or objects with "name" and
// "term" keys) KindNTVSequence. Empty or all-null sequences cannot be told
// apart and infer KindStringSequence. Anything else infers KindUnknown.
func Infer(name string, sample any, output format.OutputType, sparse bool) column.Spec {
	return column.Spec{
		Name:   name,
		Kind:   inferKind(sample),
		Output: output,
		Sparse: sparse,
	}
}

func inferKind(sample any) format.ColumnKind {
	switch v := sample.(type) {
	case string, *string:
		return format.KindString
	case []string, []*string:
		return format.KindStringSequence
	case []encoding.NTV, []map[string]any:
		return format.KindNTVSequence
	case []any:
		for _, elem := range v {
			switch e := elem.(type) {
			case nil:
				continue
			case string:
				return format.KindStringSequence
			case encoding.NTV:
				return format.KindNTVSequence
			case map[string]any:
				if isNTVObject(e) {
					return format.KindNTVSequence
				}

				return format.KindUnknown
			default:
				return format.KindUnknown
			}
		}

		return format.KindStringSequence
	default:
		return format.KindUnknown
	}
}

func isNTVObject(m map[string]any) bool {
	_, hasName := m["name"]
	_, hasTerm := m["term"]

	return hasName && hasTerm
}
