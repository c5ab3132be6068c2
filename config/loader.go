package config

import (
	"context"
	"fmt"

	"github.com/arloliu/featenc/vocab"
)

// NewLoader builds the vocabulary loader of the configured source.
// The returned close function releases the source's connections and is
// never nil.
func (c Config) NewLoader(ctx context.Context) (vocab.Loader, func() error, error) {
	noop := func() error { return nil }

	switch c.VocabSource {
	case SourceFile:
		return vocab.NewFileLoader(c.VocabDir), noop, nil
	case SourceS3:
		loader, err := vocab.NewS3Loader(ctx, vocab.S3Config{
			Bucket:         c.S3.Bucket,
			Region:         c.S3.Region,
			Prefix:         c.S3.Prefix,
			AccessKeyID:    c.S3.AccessKeyID,
			SecretKey:      c.S3.SecretKey,
			Endpoint:       c.S3.Endpoint,
			ForcePathStyle: c.S3.ForcePathStyle,
		})
		if err != nil {
			return nil, nil, err
		}

		return loader, noop, nil
	case SourceRedis:
		client, err := vocab.OpenRedis(ctx, c.Redis.URL)
		if err != nil {
			return nil, nil, err
		}

		return vocab.NewRedisLoader(client, c.Redis.Prefix), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown vocabulary source %q", ErrInvalidConfig, c.VocabSource)
	}
}
