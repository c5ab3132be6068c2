package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when the environment does not describe a runnable job.
var ErrInvalidConfig = errors.New("invalid config")

// Source selects where vocabularies are loaded from.
type Source string

const (
	SourceFile  Source = "file"
	SourceS3    Source = "s3"
	SourceRedis Source = "redis"
)

// S3 configures the S3 vocabulary source.
type S3 struct {
	Bucket         string `env:"FEATENC_S3_BUCKET"`
	Region         string `env:"FEATENC_S3_REGION"`
	Prefix         string `env:"FEATENC_S3_PREFIX"`
	AccessKeyID    string `env:"FEATENC_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"FEATENC_S3_SECRET_KEY"`
	Endpoint       string `env:"FEATENC_S3_ENDPOINT"`
	ForcePathStyle bool   `env:"FEATENC_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Redis configures the Redis vocabulary source.
type Redis struct {
	URL    string `env:"FEATENC_REDIS_URL"`
	Prefix string `env:"FEATENC_REDIS_PREFIX" envDefault:"featenc:vocab:"`
}

// Config is the configuration of the featenc command.
type Config struct {
	VocabSource Source `env:"FEATENC_VOCAB_SOURCE" envDefault:"file"`
	VocabDir    string `env:"FEATENC_VOCAB_DIR" envDefault:"vocab"`
	S3          S3
	Redis       Redis

	SchemaPath     string `env:"FEATENC_SCHEMA,required"`
	DiscardUnknown bool   `env:"FEATENC_DISCARD_UNKNOWN" envDefault:"false"`
	FilterZero     bool   `env:"FEATENC_FILTER_ZERO" envDefault:"false"`

	// Workers is the per-batch encoding parallelism; 0 means GOMAXPROCS.
	Workers   int `env:"FEATENC_WORKERS" envDefault:"0"`
	BatchSize int `env:"FEATENC_BATCH_SIZE" envDefault:"1024"`

	LogLevel slog.Level `env:"FEATENC_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment after applying the
// given .env files. Without files, a ".env" in the working directory is
// used when present. Variables already set in the environment win over
// .env entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings of the selected vocabulary source and the
// batch parameters.
func (c Config) Validate() error {
	switch c.VocabSource {
	case SourceFile:
		if c.VocabDir == "" {
			return fmt.Errorf("%w: FEATENC_VOCAB_DIR is required for the file source", ErrInvalidConfig)
		}
	case SourceS3:
		if c.S3.Bucket == "" || c.S3.Region == "" {
			return fmt.Errorf("%w: FEATENC_S3_BUCKET and FEATENC_S3_REGION are required for the s3 source", ErrInvalidConfig)
		}
	case SourceRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%w: FEATENC_REDIS_URL is required for the redis source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown vocabulary source %q", ErrInvalidConfig, c.VocabSource)
	}

	if c.SchemaPath == "" {
		return fmt.Errorf("%w: FEATENC_SCHEMA is required", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: FEATENC_WORKERS must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: FEATENC_BATCH_SIZE must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	}

	return nil
}
