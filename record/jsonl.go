package record

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
)

// Reader decodes a JSON Lines stream into records.
//
// Numbers are decoded as json.Number so that pass-through columns are
// written back exactly as read.
type Reader struct {
	dec   *json.Decoder
	count int
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()

	return &Reader{dec: dec}
}

// Read returns the next record, or io.EOF at the end of the stream.
// A JSON null decodes to an empty record.
func (r *Reader) Read() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, r.count, err)
	}
	r.count++

	if rec == nil {
		rec = Record{}
	}

	return rec, nil
}

// ReadBatch reads up to n records. It returns io.EOF only when no record
// was read.
func (r *Reader) ReadBatch(n int) ([]Record, error) {
	batch := make([]Record, 0, n)
	for len(batch) < n {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		batch = append(batch, rec)
	}

	if len(batch) == 0 {
		return nil, io.EOF
	}

	return batch, nil
}

// Count returns the number of records read so far.
func (r *Reader) Count() int {
	return r.count
}

// Writer encodes records as JSON Lines. Call Flush when done.
type Writer struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewWriter returns a buffered Writer on w.
func NewWriter(w io.Writer) *Writer {
	bw := bufio.NewWriter(w)

	return &Writer{bw: bw, enc: json.NewEncoder(bw)}
}

// Write encodes rec as one line.
func (w *Writer) Write(rec Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	return nil
}

// Flush writes buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// Stream reads records from r in batches of batchSize, transforms each batch
// with TransformAll and writes the results to w in input order. It returns
// the number of records written.
func (t *Transformer) Stream(ctx context.Context, r *Reader, w *Writer, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	start := time.Now()
	written := 0
	for {
		batch, err := r.ReadBatch(batchSize)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, err
		}

		out, err := t.TransformAll(ctx, batch)
		if err != nil {
			return written, fmt.Errorf("batch at record %d: %w", written, err)
		}

		for _, rec := range out {
			if err := w.Write(rec); err != nil {
				return written, err
			}
			written++
		}
	}

	if err := w.Flush(); err != nil {
		return written, err
	}

	t.logger.Info("stream done",
		slog.Int("records", written),
		slog.Duration("elapsed", time.Since(start)),
	)

	return written, nil
}
