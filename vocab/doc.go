// Package vocab provides per-column vocabularies and the loaders that fetch them.
//
// A Vocabulary maps each distinct feature token of one column to a stable
// non-negative id. Vocabularies are precomputed elsewhere and stored as
// newline-delimited UTF-8 text where the id of a token is its zero-based line
// number:
//
//	us      -> 0
//	de      -> 1
//	fr      -> 2
//
// NTV vocabularies use the composite token "name,term" on each line.
//
// # Loaders
//
// All loaders implement Loader and report missing columns with
// ErrVocabularyNotFound:
//
//   - MemoryLoader: in-process token lists (tests, embedded vocabularies)
//   - FileLoader:   a directory (or fs.FS) with one file per column, optionally
//     compressed with zstd, s2 or lz4 (see the compress package)
//   - S3Loader:     objects under a key prefix in S3 or an S3-compatible store
//   - RedisLoader:  one Redis list per column
//
// LoadAll fetches every column up front and fails fast, so a missing
// vocabulary stops a job before any record is encoded:
//
//	loader, err := vocab.NewS3Loader(ctx, vocab.S3Config{
//		Bucket: "features",
//		Region: "us-east-1",
//		Prefix: "vocab/2024-06-01",
//	})
//	if err != nil {
//		return err
//	}
//	vocabs, err := vocab.LoadAll(ctx, loader, []string{"country", "tags"})
//
// # Unknown Tokens
//
// Tokens missing from a vocabulary map to LastIndex: Size() when an extra
// "unknown" slot is reserved, or Size()-1 when unknown entries are discarded.
// NumUnique gives the matching vector width.
package vocab
