package vocab

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		tokens []string
	}{
		{"trailing newline", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"no trailing newline", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty line keeps its slot", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty payload", "", []string{}},
		{"ntv tokens", "n1,t1\nn2,t2\n", []string{"n1,t1", "n2,t2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseBytes("col", []byte(tt.data))
			require.Equal(t, tt.tokens, v.Tokens())
			require.Equal(t, len(tt.tokens), v.Size())
			for i, tok := range tt.tokens {
				id, ok := v.Lookup(tok)
				require.True(t, ok)
				require.Equal(t, int64(i), id)
			}
		})
	}
}

func TestParse_Reader(t *testing.T) {
	v, err := Parse("country", strings.NewReader("us\nde\nfr\n"))
	require.NoError(t, err)
	require.Equal(t, "country", v.Name())
	require.Equal(t, 3, v.Size())

	id, ok := v.Lookup("fr")
	require.True(t, ok)
	require.Equal(t, int64(2), id)

	require.False(t, v.Contains("jp"))
}

func TestVocabulary_Duplicates(t *testing.T) {
	v := New("col", []string{"a", "b", "a", "c"})

	require.Equal(t, 3, v.Size())
	id, _ := v.Lookup("a")
	require.Equal(t, int64(0), id)
	id, _ = v.Lookup("c")
	require.Equal(t, int64(3), id)

	dups := v.Duplicates()
	require.Len(t, dups, 1)
	require.Equal(t, Duplicate{Token: "a", FirstLine: 0, Line: 2}, dups[0])
	require.True(t, v.HasDuplicates())
	require.Equal(t, 4, v.Lines())
}

func TestVocabulary_DuplicatesCollideWithUnknownSlot(t *testing.T) {
	v := ParseBytes("col", []byte("a\na\nb\n"))

	require.True(t, v.HasDuplicates())
	require.Equal(t, 2, v.Size())
	require.Equal(t, 3, v.Lines())

	id, ok := v.Lookup("b")
	require.True(t, ok)
	require.Equal(t, v.LastIndex(false), id)

	clean := New("col", []string{"a", "b"})
	require.False(t, clean.HasDuplicates())
	require.Empty(t, clean.Duplicates())
	require.Equal(t, clean.Size(), clean.Lines())
}

func TestVocabulary_LastIndex(t *testing.T) {
	for _, size := range []int{0, 1, 2, 17} {
		tokens := make([]string, size)
		for i := range tokens {
			tokens[i] = strings.Repeat("x", i+1)
		}
		v := New("col", tokens)

		require.Equal(t, int64(size-1), v.LastIndex(true))
		require.Equal(t, int64(size), v.LastIndex(false))
		require.Equal(t, size, v.NumUnique(true))
		require.Equal(t, size+1, v.NumUnique(false))
	}
}

func TestVocabulary_Immutable(t *testing.T) {
	src := []string{"a", "b"}
	v := New("col", src)
	src[0] = "z"

	require.True(t, v.Contains("a"))
	require.False(t, v.Contains("z"))

	tokens := v.Tokens()
	tokens[1] = "changed"
	require.Equal(t, []string{"a", "b"}, v.Tokens())
}

func TestVocabulary_Fingerprint(t *testing.T) {
	a := New("a", []string{"x", "y"})
	b := ParseBytes("b", []byte("x\ny\n"))
	c := New("c", []string{"y", "x"})

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestVocabulary_ConcurrentReads(t *testing.T) {
	v := New("col", []string{"a", "b", "c"})

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				_, _ = v.Lookup("b")
				_ = v.LastIndex(false)
			}
		}()
	}
	wg.Wait()
}
