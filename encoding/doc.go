// Package encoding converts categorical feature values into numeric encodings
// using a per-column vocabulary.
//
// Three encoders cover the supported column shapes:
//
//   - EncodeScalar:   one optional string      -> one id
//   - EncodeSequence: a sequence of strings    -> a sequence of ids
//   - EncodeNTV:      name/term/value entries  -> IdValue pairs
//
// IdValue pairs are turned into tensors by ToSparse and ToDense, using the
// vocabulary's NumUnique as vector width.
//
// # Unknown Tokens
//
// Every encoder takes a discardUnknown flag. The id used for unknown and
// absent tokens is vocab.Vocabulary.LastIndex(discardUnknown):
//
//	| discardUnknown | lastIndex | vector width |
//	|----------------|-----------|--------------|
//	| false          | Size()    | Size()+1     |
//	| true           | Size()-1  | Size()       |
//
// With discardUnknown=false the extra slot Size() is the "unknown" bucket.
// With discardUnknown=true unknown tokens are dropped from sequences and NTV
// records, and absent scalars or empty records fall back to Size()-1.
//
// # Example
//
//	v := vocab.New("country", []string{"a", "b"})
//	EncodeToken("c", v, false)                          // 2
//	EncodeSequence([]string{"a", "z", "b"}, v, false)   // [0 2 1]
//	EncodeSequence([]string{"a", "z", "b"}, v, true)    // [0 1]
//
// All functions are pure: they never modify the vocabulary, keep no state
// between calls and allocate a fresh result, so they can be called from any
// number of goroutines.
package encoding
