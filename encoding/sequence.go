package encoding

import "github.com/arloliu/featenc/vocab"

// EncodeSequence maps a sequence of tokens to vocabulary ids.
//
// Order and repeats of the input are preserved. Unknown tokens are dropped
// when discardUnknown is set, otherwise they map to v.LastIndex(false).
// The result is never empty: a nil or empty input, or an input whose tokens
// were all dropped, yields [v.LastIndex(discardUnknown)].
func EncodeSequence(tokens []string, v *vocab.Vocabulary, discardUnknown bool) []int64 {
	lastIndex := v.LastIndex(discardUnknown)
	if len(tokens) == 0 {
		return []int64{lastIndex}
	}

	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		id, ok := v.Lookup(token)
		switch {
		case ok:
			ids = append(ids, id)
		case discardUnknown:
			// dropped
		default:
			ids = append(ids, lastIndex)
		}
	}

	if len(ids) == 0 {
		return []int64{lastIndex}
	}

	return ids
}
