package column

import (
	"fmt"

	"github.com/arloliu/featenc/encoding"
)

// float64er matches json.Number from encoding/json and goccy/go-json.
type float64er interface {
	Float64() (float64, error)
}

// optionalString normalizes a raw scalar value. nil means the value is absent.
func optionalString(raw any) (*string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case *string:
		return v, nil
	default:
		return nil, shapeError("string", raw)
	}
}

// stringSequence normalizes a raw sequence value.
// Null elements carry no category and are skipped.
func stringSequence(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []*string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s != nil {
				out = append(out, *s)
			}
		}

		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, elem := range v {
			switch s := elem.(type) {
			case nil:
			case string:
				out = append(out, s)
			default:
				return nil, fmt.Errorf("%w: element %d: %s", ErrValueShape, i, describe(elem))
			}
		}

		return out, nil
	default:
		return nil, shapeError("string sequence", raw)
	}
}

// ntvSequence normalizes a raw NTV sequence. Elements may be encoding.NTV
// values or decoded JSON objects with "name", "term" and optional "value" keys.
// Null elements are skipped.
func ntvSequence(raw any) ([]encoding.NTV, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []encoding.NTV:
		return v, nil
	case []map[string]any:
		out := make([]encoding.NTV, 0, len(v))
		for i, m := range v {
			e, err := ntvFromMap(m)
			if err != nil {
				return nil, fmt.Errorf("%w: element %d: %v", ErrValueShape, i, err)
			}
			out = append(out, e)
		}

		return out, nil
	case []any:
		out := make([]encoding.NTV, 0, len(v))
		for i, elem := range v {
			switch e := elem.(type) {
			case nil:
			case encoding.NTV:
				out = append(out, e)
			case map[string]any:
				entry, err := ntvFromMap(e)
				if err != nil {
					return nil, fmt.Errorf("%w: element %d: %v", ErrValueShape, i, err)
				}
				out = append(out, entry)
			default:
				return nil, fmt.Errorf("%w: element %d: %s", ErrValueShape, i, describe(elem))
			}
		}

		return out, nil
	default:
		return nil, shapeError("ntv sequence", raw)
	}
}

func ntvFromMap(m map[string]any) (encoding.NTV, error) {
	name, err := stringField(m, "name")
	if err != nil {
		return encoding.NTV{}, err
	}
	term, err := stringField(m, "term")
	if err != nil {
		return encoding.NTV{}, err
	}

	entry := encoding.NTV{Name: name, Term: term}
	value, err := numberField(m, "value")
	if err != nil {
		return encoding.NTV{}, err
	}
	entry.Value = value

	return entry, nil
}

func stringField(m map[string]any, key string) (string, error) {
	switch v := m[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("field %q: want string, got %s", key, describe(v))
	}
}

func numberField(m map[string]any, key string) (*float64, error) {
	var f float64
	switch v := m[key].(type) {
	case nil:
		return nil, nil
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64er:
		parsed, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		f = parsed
	default:
		return nil, fmt.Errorf("field %q: want number, got %s", key, describe(v))
	}

	return &f, nil
}

func shapeError(want string, raw any) error {
	return fmt.Errorf("%w: want %s, got %s", ErrValueShape, want, describe(raw))
}

func describe(v any) string {
	return fmt.Sprintf("%T", v)
}
