package compress

// ZstdCompressor provides Zstandard compression for vocabulary files.
//
// Payloads are standard zstd frames, so files produced by the `zstd`
// command line tool can be loaded directly.
//
// The pure Go implementation (klauspost/compress) is used by default.
// Building with the "gozstd" tag and cgo enabled switches to the
// libzstd binding from valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	compressed, err := codec.Compress(tokens)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
