package column

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/featenc/encoding"
	"github.com/arloliu/featenc/format"
	"github.com/arloliu/featenc/internal/options"
	"github.com/arloliu/featenc/vocab"
)

// Config holds the encoding flags of a column converter.
type Config struct {
	discardUnknown bool
	filterZero     bool
	logger         *slog.Logger
}

// Option is a functional option for configuring a Converter.
type Option = options.Option[*Config]

// WithDiscardUnknown drops unknown tokens instead of mapping them to the
// reserved unknown slot. Default is false.
func WithDiscardUnknown(discard bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.discardUnknown = discard
	})
}

// WithFilterZero removes zero-valued entries from sparse vectors.
// Default is false.
func WithFilterZero(filter bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.filterZero = filter
	})
}

// WithLogger sets the logger used for column diagnostics.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// Converter encodes the raw values of one column.
//
// A Converter is immutable after construction and safe for concurrent use;
// one instance serves every record of a job.
type Converter struct {
	spec   Spec
	action Action
	vocab  *vocab.Vocabulary
	cfg    Config
}

// NewConverter plans spec and binds the plan to its vocabulary and flags.
//
// Returns an *UnsupportedColumnTypeError for unsupported column kinds, and
// ErrNilVocabulary when a converting column has no vocabulary. Pass-through
// columns log a warning once here and need no vocabulary.
func NewConverter(spec Spec, v *vocab.Vocabulary, opts ...Option) (*Converter, error) {
	cfg := Config{logger: slog.Default()}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	action, err := Plan(spec)
	if err != nil {
		return nil, err
	}

	if !action.Converts() {
		cfg.logger.Warn("column passed through unconverted: output type is not an integer type",
			slog.String("column", spec.Name),
			slog.String("kind", spec.Kind.String()),
			slog.String("output", spec.Output.String()),
		)
	} else if v == nil {
		return nil, fmt.Errorf("%w: column %q", ErrNilVocabulary, spec.Name)
	}

	return &Converter{spec: spec, action: action, vocab: v, cfg: cfg}, nil
}

// Spec returns the column spec.
func (c *Converter) Spec() Spec {
	return c.spec
}

// Action returns the planned conversion.
func (c *Converter) Action() Action {
	return c.action
}

// Vocabulary returns the bound vocabulary; nil for pass-through columns.
func (c *Converter) Vocabulary() *vocab.Vocabulary {
	return c.vocab
}

// Width returns the vector width of NTV columns (vocab.NumUnique under the
// discard policy) and 0 for other columns.
func (c *Converter) Width() int {
	if c.action != ActionSparse && c.action != ActionDense {
		return 0
	}

	return c.vocab.NumUnique(c.cfg.discardUnknown)
}

// Convert encodes one raw value.
//
// Result types by action:
//   - scalar:       int32 or int64, following Spec.Output
//   - sequence:     []int32 or []int64, following Spec.Output
//   - sparse:       encoding.SparseVector
//   - dense:        encoding.DenseVector
//   - pass-through: raw, unchanged
//
// The only error is ErrValueShape, returned when raw does not have the Go
// shape of the planned column; absent and empty values are always encodable.
func (c *Converter) Convert(raw any) (any, error) {
	discard := c.cfg.discardUnknown

	switch c.action {
	case ActionScalar:
		s, err := optionalString(raw)
		if err != nil {
			return nil, c.wrap(err)
		}
		id := encoding.EncodeScalar(s, c.vocab, discard)
		if c.spec.Output == format.OutputInt32 {
			return int32(id), nil //nolint:gosec // vocabulary ids fit the declared tensor type
		}

		return id, nil
	case ActionSequence:
		tokens, err := stringSequence(raw)
		if err != nil {
			return nil, c.wrap(err)
		}
		ids := encoding.EncodeSequence(tokens, c.vocab, discard)
		if c.spec.Output == format.OutputInt32 {
			return toInt32s(ids), nil
		}

		return ids, nil
	case ActionSparse, ActionDense:
		entries, err := ntvSequence(raw)
		if err != nil {
			return nil, c.wrap(err)
		}
		ivs := encoding.EncodeNTV(entries, c.vocab, discard)
		if c.action == ActionSparse {
			return encoding.ToSparse(ivs, c.Width(), c.cfg.filterZero), nil
		}

		return encoding.ToDense(ivs, c.Width()), nil
	default:
		return raw, nil
	}
}

func (c *Converter) wrap(err error) error {
	return fmt.Errorf("column %q: %w", c.spec.Name, err)
}

func toInt32s(ids []int64) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id) //nolint:gosec // vocabulary ids fit the declared tensor type
	}

	return out
}
