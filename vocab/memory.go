package vocab

import (
	"context"
	"maps"
)

// MemoryLoader serves vocabularies built in memory. It is mainly used in tests
// and by callers that build vocabularies in the same process.
type MemoryLoader struct {
	vocabs map[string]*Vocabulary
}

var _ Loader = (*MemoryLoader)(nil)

// NewMemoryLoader creates a loader from column → tokens in id order.
func NewMemoryLoader(columns map[string][]string) *MemoryLoader {
	vocabs := make(map[string]*Vocabulary, len(columns))
	for name, tokens := range columns {
		vocabs[name] = New(name, tokens)
	}

	return &MemoryLoader{vocabs: vocabs}
}

// NewMemoryLoaderFrom creates a loader serving prebuilt vocabularies.
func NewMemoryLoaderFrom(vocabs map[string]*Vocabulary) *MemoryLoader {
	return &MemoryLoader{vocabs: maps.Clone(vocabs)}
}

// Load returns the vocabulary of column.
func (l *MemoryLoader) Load(ctx context.Context, column string) (*Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := l.vocabs[column]
	if !ok {
		return nil, notFound(column)
	}

	return v, nil
}
