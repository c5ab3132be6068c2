// Command featenc encodes the feature columns of JSON Lines records read from
// stdin and writes the encoded records to stdout.
//
// Configuration comes from FEATENC_* environment variables (see package
// config); logs are written to stderr as JSON.
//
//	FEATENC_SCHEMA=schema.yaml FEATENC_VOCAB_DIR=./vocab featenc < in.jsonl > out.jsonl
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arloliu/featenc/config"
	"github.com/arloliu/featenc/record"
	"github.com/arloliu/featenc/schema"
	"github.com/arloliu/featenc/vocab"
)

func main() {
	envFile := flag.String("env", "", "optional .env file applied before reading the environment")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *envFile, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "featenc:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, envFile string, in io.Reader, out io.Writer, logOut io.Writer) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	start := time.Now()

	specs, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		return err
	}

	columns, err := record.VocabularyColumns(specs)
	if err != nil {
		return err
	}

	loader, closeLoader, err := cfg.NewLoader(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLoader(); err != nil {
			logger.Warn("close vocabulary source", slog.Any("error", err))
		}
	}()

	vocabs, err := vocab.LoadAll(ctx, loader, columns, vocab.WithLoadLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("vocabularies ready",
		slog.String("source", string(cfg.VocabSource)),
		slog.Int("columns", len(vocabs)),
	)

	opts := []record.Option{
		record.WithDiscardUnknown(cfg.DiscardUnknown),
		record.WithFilterZero(cfg.FilterZero),
		record.WithLogger(logger),
	}
	if cfg.Workers > 0 {
		opts = append(opts, record.WithWorkers(cfg.Workers))
	}

	tr, err := record.NewTransformer(specs, vocabs, opts...)
	if err != nil {
		return err
	}

	n, err := tr.Stream(ctx, record.NewReader(in), record.NewWriter(out), cfg.BatchSize)
	if err != nil {
		logger.Error("encoding failed", slog.Int("records", n), slog.Any("error", err))
		return err
	}

	logger.Info("done", slog.Int("records", n), slog.Duration("elapsed", time.Since(start)))

	return nil
}
