// Package compress provides the codecs used to read compressed vocabulary files.
//
// Vocabularies are newline-delimited token lists and can be large (millions of
// tokens for id-like features). Builders may store them compressed; loaders pick
// the codec from the file extension:
//
//	| Extension    | Type                   | Format                  |
//	|--------------|------------------------|-------------------------|
//	| none, .txt   | format.CompressionNone | plain text              |
//	| .zst, .zstd  | format.CompressionZstd | zstd frames             |
//	| .s2          | format.CompressionS2   | S2 stream               |
//	| .lz4         | format.CompressionLZ4  | LZ4 frame               |
//
// All formats are the framed/stream variants written by the matching command
// line tools, so vocabulary files can be compressed outside of Go.
//
// # Usage
//
//	payload, _ := os.ReadFile("vocab/country.zst")
//	tokens, err := compress.DecompressPath("vocab/country.zst", payload)
//	if err != nil {
//		return err
//	}
//
// # Thread Safety
//
// All codec implementations are stateless values backed by sync.Pool and can
// be shared across goroutines.
package compress
