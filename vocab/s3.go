package vocab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/arloliu/featenc/compress"
	"github.com/arloliu/featenc/internal/options"
	"github.com/arloliu/featenc/internal/pool"
)

// S3Client defines the S3 operations used by S3Loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// S3Config contains the location of vocabulary objects in S3 or an S3-compatible store.
type S3Config struct {
	Bucket         string
	Region         string
	Prefix         string // Key prefix, e.g. "vocab/2024-06-01/"
	AccessKeyID    string // Optional - uses the default credential chain if empty
	SecretKey      string // Optional - uses the default credential chain if empty
	Endpoint       string // For S3-compatible services like MinIO
	ForcePathStyle bool   // Required for MinIO and some S3-compatible services
}

type s3Options struct {
	client     S3Client
	httpClient *http.Client
}

// S3Option configures NewS3Loader.
type S3Option = options.Option[*s3Options]

// WithS3Client sets a pre-configured S3 client, primarily for tests.
func WithS3Client(client S3Client) S3Option {
	return options.NoError(func(o *s3Options) {
		o.client = client
	})
}

// WithHTTPClient sets the HTTP client used by the default S3 client.
func WithHTTPClient(client *http.Client) S3Option {
	return options.NoError(func(o *s3Options) {
		o.httpClient = client
	})
}

// S3Loader loads vocabulary objects stored as <prefix><column>[.ext].
// Extensions are probed in the same order as FileLoader.
type S3Loader struct {
	client S3Client
	bucket string
	prefix string
}

var _ Loader = (*S3Loader)(nil)

// NewS3Loader creates an S3-backed loader.
func NewS3Loader(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Loader, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidConfig)
	}

	o := &s3Options{}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(opt *s3aws.Options) {
			if cfg.Endpoint != "" {
				opt.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			opt.UsePathStyle = cfg.ForcePathStyle
		})
	}

	prefix := strings.TrimPrefix(cfg.Prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &S3Loader{client: client, bucket: cfg.Bucket, prefix: prefix}, nil
}

// Load fetches and parses the vocabulary object of column.
//
// Without s3:ListBucket, S3 answers a GET on a missing key with AccessDenied
// instead of NoSuchKey, so a denied probe does not stop the search. The
// first denial is returned only when no candidate key can be read.
func (l *S3Loader) Load(ctx context.Context, column string) (*Vocabulary, error) {
	if err := validateColumn(column); err != nil {
		return nil, err
	}

	var denied error
	for _, suffix := range candidateSuffixes {
		key := l.prefix + column + suffix

		v, err := l.loadObject(ctx, column, key)
		if errors.Is(err, ErrVocabularyNotFound) {
			continue
		}
		if errors.Is(err, ErrAccessDenied) {
			if denied == nil {
				denied = err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		return v, nil
	}

	if denied != nil {
		return nil, denied
	}

	return nil, notFound(column)
}

func (l *S3Loader) loadObject(ctx context.Context, column, key string) (*Vocabulary, error) {
	out, err := l.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, key)
	}
	defer func() { _ = out.Body.Close() }()

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if _, err := buf.ReadFrom(out.Body); err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", l.bucket, key, err)
	}

	payload, err := compress.DecompressPath(key, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return ParseBytes(column, payload), nil
}

// classifyS3Error maps S3 errors to loader errors.
// Missing keys become ErrVocabularyNotFound so the next extension is probed.
func classifyS3Error(err error, key string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrVocabularyNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrVocabularyNotFound, key)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", ErrAccessDenied, key)
		default:
			return fmt.Errorf("get object %s failed (code: %s): %w", key, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("get object %s failed: %w", key, err)
}
