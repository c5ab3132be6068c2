package vocab

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the Redis commands used by RedisLoader.
// *redis.Client and *redis.ClusterClient satisfy it.
type RedisClient interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisLoader loads vocabularies stored as Redis lists, one list per column
// under key <prefix><column>. List position is the token id.
type RedisLoader struct {
	client RedisClient
	prefix string
}

var _ Loader = (*RedisLoader)(nil)

// NewRedisLoader creates a Redis-backed loader.
func NewRedisLoader(client RedisClient, prefix string) *RedisLoader {
	return &RedisLoader{client: client, prefix: prefix}
}

// OpenRedis parses a redis:// or rediss:// URL, connects and verifies the
// connection with PING.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: redis url is required", ErrInvalidConfig)
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis url: %v", ErrInvalidConfig, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Load reads the list of column. A missing or empty list is reported as
// ErrVocabularyNotFound since Redis does not distinguish the two.
func (l *RedisLoader) Load(ctx context.Context, column string) (*Vocabulary, error) {
	if column == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}

	key := l.prefix + column
	tokens, err := l.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}
	if len(tokens) == 0 {
		return nil, notFound(column)
	}

	return New(column, tokens), nil
}
