package vocab

import (
	"bytes"
	"io"
	"slices"

	"github.com/arloliu/featenc/internal/collision"
	"github.com/arloliu/featenc/internal/hash"
	"github.com/arloliu/featenc/internal/pool"
)

// Duplicate describes a token repeated in a vocabulary source.
type Duplicate = collision.Duplicate

// Vocabulary is an immutable mapping from feature token to integer id for one column.
//
// Ids are zero-based line numbers of the vocabulary file. A Vocabulary never
// changes after construction and is safe for concurrent use without locking.
type Vocabulary struct {
	name        string
	ids         map[string]int64
	tokens      []string
	lines       int
	duplicates  []collision.Duplicate
	fingerprint uint64
}

// New builds a vocabulary from tokens in id order.
// The first occurrence of a repeated token keeps its id.
func New(name string, tokens []string) *Vocabulary {
	tracker := collision.NewTracker(len(tokens))
	for _, t := range tokens {
		tracker.Track(t)
	}

	return newFromTracker(name, slices.Clone(tokens), tracker)
}

func newFromTracker(name string, tokens []string, tracker *collision.Tracker) *Vocabulary {
	v := &Vocabulary{
		name:        name,
		ids:         tracker.IDs(),
		tokens:      tokens,
		lines:       tracker.Lines(),
		fingerprint: hash.Tokens(tokens),
	}
	if tracker.HasDuplicates() {
		v.duplicates = tracker.Duplicates()
	}

	return v
}

// Parse reads a newline-delimited vocabulary from r.
//
// Each line is one token and its zero-based line number is the token id.
// A trailing "\r" is stripped so CRLF files load the same as LF files, and a
// final newline does not produce an extra empty token.
func Parse(name string, r io.Reader) (*Vocabulary, error) {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	return ParseBytes(name, buf.Bytes()), nil
}

// ParseBytes parses a newline-delimited vocabulary payload.
// Tokens are copied, so data may be reused after the call.
func ParseBytes(name string, data []byte) *Vocabulary {
	tracker := collision.NewTracker(bytes.Count(data, []byte{'\n'}) + 1)
	tokens := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)

	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}

		token := string(bytes.TrimSuffix(line, []byte{'\r'}))
		tokens = append(tokens, token)
		tracker.Track(token)
	}

	return newFromTracker(name, tokens, tracker)
}

// Name returns the column name the vocabulary was loaded for.
func (v *Vocabulary) Name() string {
	return v.name
}

// Lookup returns the id of token and whether the token is known.
func (v *Vocabulary) Lookup(token string) (int64, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Contains reports whether token is part of the vocabulary.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.ids[token]
	return ok
}

// Size returns the number of distinct tokens.
func (v *Vocabulary) Size() int {
	return len(v.ids)
}

// Lines returns the number of source lines, repeated tokens included.
// It differs from Size() exactly when the source repeats tokens.
func (v *Vocabulary) Lines() int {
	return v.lines
}

// HasDuplicates reports whether the source repeated any token.
//
// Ids are line numbers, so in such a vocabulary LastIndex collides with the
// id of a real token and unknown tokens become indistinguishable from it.
func (v *Vocabulary) HasDuplicates() bool {
	return len(v.duplicates) > 0
}

// LastIndex returns the id used for unknown and absent tokens.
//
// When unknown entries are discarded it is Size()-1, otherwise one extra slot
// is reserved and it is Size(). For vocabularies with repeated tokens
// (HasDuplicates) this slot is also the id of a real token.
func (v *Vocabulary) LastIndex(discardUnknown bool) int64 {
	if discardUnknown {
		return int64(v.Size()) - 1
	}

	return int64(v.Size())
}

// NumUnique returns the width of vectors built from this vocabulary:
// Size() when unknown entries are discarded, Size()+1 otherwise.
func (v *Vocabulary) NumUnique(discardUnknown bool) int {
	if discardUnknown {
		return v.Size()
	}

	return v.Size() + 1
}

// Tokens returns a copy of the tokens in id order, repeats included.
func (v *Vocabulary) Tokens() []string {
	return slices.Clone(v.tokens)
}

// Duplicates returns tokens that were repeated in the source.
func (v *Vocabulary) Duplicates() []Duplicate {
	return slices.Clone(v.duplicates)
}

// Fingerprint returns the xxHash64 of the canonical newline-delimited payload.
// Two vocabularies with the same tokens in the same order share a fingerprint.
func (v *Vocabulary) Fingerprint() uint64 {
	return v.fingerprint
}
