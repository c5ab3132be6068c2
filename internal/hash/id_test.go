package hash

import (
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("a\nb\n"), Tokens([]string{"a", "b"}))
	require.Equal(t, uint64(0xef46db3751d8e999), Tokens(nil))
	require.NotEqual(t, Tokens([]string{"ab"}), Tokens([]string{"a", "b"}))
	require.NotEqual(t, Tokens([]string{"a", "b"}), Tokens([]string{"b", "a"}))
}

func BenchmarkTokens(b *testing.B) {
	tokens := make([]string, 10_000)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token_%d", i)
	}

	b.ResetTimer()
	for b.Loop() {
		Tokens(tokens)
	}
}
