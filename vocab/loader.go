package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/featenc/internal/options"
)

// Loader returns the vocabulary of a feature column.
//
// Implementations return an error wrapping ErrVocabularyNotFound when the
// column has no vocabulary, and must be safe for concurrent use.
type Loader interface {
	Load(ctx context.Context, column string) (*Vocabulary, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, column string) (*Vocabulary, error)

// Load calls f(ctx, column).
func (f LoaderFunc) Load(ctx context.Context, column string) (*Vocabulary, error) {
	return f(ctx, column)
}

const defaultLoadConcurrency = 8

type loadConfig struct {
	concurrency      int
	rejectDuplicates bool
	logger           *slog.Logger
}

// LoadOption configures LoadAll.
type LoadOption = options.Option[*loadConfig]

// WithLoadConcurrency limits how many vocabularies are fetched at once.
// Default is 8.
func WithLoadConcurrency(n int) LoadOption {
	return options.New(func(cfg *loadConfig) error {
		if n <= 0 {
			return fmt.Errorf("load concurrency must be positive, got %d", n)
		}
		cfg.concurrency = n

		return nil
	})
}

// WithLoadLogger sets the logger used to report loaded vocabularies.
func WithLoadLogger(logger *slog.Logger) LoadOption {
	return options.NoError(func(cfg *loadConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// WithRejectDuplicates makes LoadAll fail with ErrDuplicateTokens when a
// vocabulary repeats a token. Such a vocabulary maps unknown tokens onto the
// id of a real token. Default is false: the vocabulary is kept and a warning
// is logged.
func WithRejectDuplicates(reject bool) LoadOption {
	return options.NoError(func(cfg *loadConfig) {
		cfg.rejectDuplicates = reject
	})
}

// LoadAll loads the vocabularies of all columns before any record is processed.
//
// Loading is fail-fast: the first error cancels the remaining loads and is
// returned wrapped with the column name. Repeated column names are loaded once.
//
// Example:
//
//	vocabs, err := vocab.LoadAll(ctx, vocab.NewFileLoader("/data/vocab"), []string{"country", "tags"})
//	if err != nil {
//		return err // errors.Is(err, vocab.ErrVocabularyNotFound) for missing columns
//	}
func LoadAll(ctx context.Context, loader Loader, columns []string, opts ...LoadOption) (map[string]*Vocabulary, error) {
	cfg := &loadConfig{concurrency: defaultLoadConcurrency, logger: slog.Default()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	result := make(map[string]*Vocabulary, len(columns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	seen := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		if _, dup := seen[column]; dup {
			continue
		}
		seen[column] = struct{}{}

		g.Go(func() error {
			start := time.Now()

			v, err := loader.Load(gctx, column)
			if err != nil {
				return fmt.Errorf("load vocabulary for column %q: %w", column, err)
			}

			attrs := []any{
				slog.String("column", column),
				slog.Int("size", v.Size()),
				slog.Int("lines", v.Lines()),
				slog.String("fingerprint", fmt.Sprintf("%016x", v.Fingerprint())),
				slog.Duration("elapsed", time.Since(start)),
			}
			if v.HasDuplicates() {
				dups := v.Duplicates()
				if cfg.rejectDuplicates {
					return fmt.Errorf("load vocabulary for column %q: %w: %q repeated on line %d",
						column, ErrDuplicateTokens, dups[0].Token, dups[0].Line)
				}
				cfg.logger.WarnContext(gctx,
					"vocabulary contains repeated tokens, first occurrence wins; unknown slot collides with a token id",
					append(attrs,
						slog.Int("duplicates", len(dups)),
						slog.String("first_duplicate", dups[0].Token),
						slog.Int64("unknown_slot", v.LastIndex(false)),
					)...)
			} else {
				cfg.logger.DebugContext(gctx, "vocabulary loaded", attrs...)
			}

			mu.Lock()
			result[column] = v
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// validateColumn rejects column names that cannot be mapped to a file or key.
func validateColumn(column string) error {
	if column == "" || strings.Contains(column, "..") || strings.ContainsAny(column, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}

	return nil
}

// notFound wraps ErrVocabularyNotFound with the column name.
func notFound(column string) error {
	return fmt.Errorf("%w: column %q", ErrVocabularyNotFound, column)
}

// IsNotFound reports whether err indicates a missing vocabulary.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVocabularyNotFound)
}
