package hash

import "github.com/cespare/xxhash/v2"

// Tokens computes an order-sensitive xxHash64 over a token list.
//
// Each token is followed by a newline, so the result equals the hash of the
// canonical newline-delimited vocabulary payload and ["ab"] differs from ["a", "b"].
func Tokens(tokens []string) uint64 {
	d := xxhash.New()
	for _, t := range tokens {
		_, _ = d.WriteString(t)
		_, _ = d.WriteString("\n")
	}

	return d.Sum64()
}
