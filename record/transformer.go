package record

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/featenc/column"
	"github.com/arloliu/featenc/internal/options"
	"github.com/arloliu/featenc/vocab"
)

// Record is one row: column name to raw value.
type Record = map[string]any

type transformConfig struct {
	discardUnknown bool
	filterZero     bool
	workers        int
	logger         *slog.Logger
}

// Option configures a Transformer.
type Option = options.Option[*transformConfig]

// WithDiscardUnknown drops unknown tokens instead of mapping them to the
// reserved unknown slot. Default is false.
func WithDiscardUnknown(discard bool) Option {
	return options.NoError(func(cfg *transformConfig) {
		cfg.discardUnknown = discard
	})
}

// WithFilterZero removes zero-valued entries from sparse NTV vectors.
// Default is false.
func WithFilterZero(filter bool) Option {
	return options.NoError(func(cfg *transformConfig) {
		cfg.filterZero = filter
	})
}

// WithWorkers limits how many records TransformAll encodes concurrently.
// Default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return options.New(func(cfg *transformConfig) error {
		if n <= 0 {
			return fmt.Errorf("workers must be positive, got %d", n)
		}
		cfg.workers = n

		return nil
	})
}

// WithLogger sets the logger for planning and batch diagnostics.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *transformConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// Transformer converts the feature columns of records.
//
// All columns are planned once at construction; a Transformer is immutable
// afterwards and safe for concurrent use.
type Transformer struct {
	converters []*column.Converter
	workers    int
	logger     *slog.Logger
}

// NewTransformer plans every spec and binds converting columns to their
// vocabulary in vocabs, keyed by column name.
//
// Parameters:
//   - specs: feature columns; columns of a record not listed here pass through
//   - vocabs: vocabularies keyed by column name, typically from vocab.LoadAll
//   - opts: encoding flags, worker limit and logger
//
// Returns:
//   - *Transformer: ready to encode records
//   - error: column.ErrUnsupportedColumnType for an unsupported column,
//     column.ErrNilVocabulary when a converting column has no vocabulary
func NewTransformer(specs []column.Spec, vocabs map[string]*vocab.Vocabulary, opts ...Option) (*Transformer, error) {
	cfg := &transformConfig{workers: runtime.GOMAXPROCS(0), logger: slog.Default()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	convOpts := []column.Option{
		column.WithDiscardUnknown(cfg.discardUnknown),
		column.WithFilterZero(cfg.filterZero),
		column.WithLogger(cfg.logger),
	}

	converters := make([]*column.Converter, 0, len(specs))
	for _, spec := range specs {
		conv, err := column.NewConverter(spec, vocabs[spec.Name], convOpts...)
		if err != nil {
			return nil, err
		}
		converters = append(converters, conv)
	}

	return &Transformer{converters: converters, workers: cfg.workers, logger: cfg.logger}, nil
}

// VocabularyColumns returns the names of the specs that need a vocabulary,
// in order. Unsupported specs fail here, before anything is loaded.
func VocabularyColumns(specs []column.Spec) ([]string, error) {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		action, err := column.Plan(spec)
		if err != nil {
			return nil, err
		}
		if action.Converts() {
			names = append(names, spec.Name)
		}
	}

	return names, nil
}

// Converters returns the planned column converters in spec order.
func (t *Transformer) Converters() []*column.Converter {
	out := make([]*column.Converter, len(t.converters))
	copy(out, t.converters)

	return out
}

// Transform returns a new record holding the converted feature columns and
// every other column of rec unchanged. rec is not modified.
//
// A converting column missing from rec is encoded as a null value.
// Pass-through columns keep their presence in rec.
func (t *Transformer) Transform(rec Record) (Record, error) {
	out := make(Record, len(rec)+len(t.converters))
	for k, v := range rec {
		out[k] = v
	}

	for _, conv := range t.converters {
		if !conv.Action().Converts() {
			continue
		}

		name := conv.Spec().Name
		encoded, err := conv.Convert(rec[name])
		if err != nil {
			return nil, err
		}
		out[name] = encoded
	}

	return out, nil
}

// TransformAll transforms records with at most the configured number of
// workers. The result has the same length and order as records.
//
// The first error, or cancellation of ctx, stops scheduling further records
// and is returned; errors are wrapped with the zero-based record index.
func (t *Transformer) TransformAll(ctx context.Context, records []Record) ([]Record, error) {
	start := time.Now()
	results := make([]Record, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := t.Transform(rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.logger.Debug("records transformed",
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return results, nil
}
