package encoding

import "github.com/arloliu/featenc/vocab"

// EncodeScalar maps a single optional string to its vocabulary id.
//
// A nil value or a token missing from v maps to v.LastIndex(discardUnknown).
func EncodeScalar(value *string, v *vocab.Vocabulary, discardUnknown bool) int64 {
	if value == nil {
		return v.LastIndex(discardUnknown)
	}

	return EncodeToken(*value, v, discardUnknown)
}

// EncodeToken maps a present string to its vocabulary id, or to
// v.LastIndex(discardUnknown) when it is unknown.
func EncodeToken(token string, v *vocab.Vocabulary, discardUnknown bool) int64 {
	if id, ok := v.Lookup(token); ok {
		return id
	}

	return v.LastIndex(discardUnknown)
}
