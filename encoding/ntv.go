package encoding

import "github.com/arloliu/featenc/vocab"

const (
	// DefaultNTVValue is the value of NTV entries that carry no explicit number.
	DefaultNTVValue = 1.0
	// UnknownValue is the value of the collapsed unknown entry.
	UnknownValue = 1.0
	// PaddingValue is the value of the padding entry emitted for empty records.
	PaddingValue = 0.0
)

// EncodeNTV maps name/term/value entries to IdValue pairs.
//
// Entries are looked up by NTVToken(name, term) and keep their input order.
// Unknown entries are never emitted one by one: when discardUnknown is false
// and at least one entry was unknown, a single IdValue(lastIndex, 1.0) is
// appended after the known entries, so a record with many out-of-vocabulary
// terms still adds only one extra vector slot.
//
// The result is never empty. A nil or empty input, or one where every entry
// was discarded, yields [IdValue(lastIndex, 0.0)].
func EncodeNTV(entries []NTV, v *vocab.Vocabulary, discardUnknown bool) []IdValue {
	lastIndex := v.LastIndex(discardUnknown)
	padding := IdValue{ID: lastIndex, Value: PaddingValue}

	if len(entries) == 0 {
		return []IdValue{padding}
	}

	out := make([]IdValue, 0, len(entries)+1)
	hasUnknown := false
	for _, e := range entries {
		id, ok := v.Lookup(e.Token())
		if !ok {
			hasUnknown = true
			continue
		}

		value := DefaultNTVValue
		if e.Value != nil {
			value = *e.Value
		}
		out = append(out, IdValue{ID: id, Value: value})
	}

	if hasUnknown && !discardUnknown {
		out = append(out, IdValue{ID: lastIndex, Value: UnknownValue})
	}

	if len(out) == 0 {
		out = append(out, padding)
	}

	return out
}
