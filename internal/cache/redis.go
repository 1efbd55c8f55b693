package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

// Compile-time check: Redis implements Cache.
var _ Cache = (*Redis)(nil)

const scanBatch = 256

// RedisConfig holds connection parameters for a Redis-backed cache.
type RedisConfig struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// Redis stores search results in Redis with a server-side TTL (SET EX), so
// expiry is enforced by the store itself. Useful when several assistant
// replicas should share one result cache.
type Redis struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis cache via rueidis.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "assistant:search_cache:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}

	return &Redis{client: client, prefix: cfg.KeyPrefix, ttl: cfg.TTL}, nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	cmd := r.client.B().Ping().Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Get returns a cached result. A missing or expired key is a plain miss.
func (r *Redis) Get(ctx context.Context, key string) (result.Result, bool, error) {
	cmd := r.client.B().Get().Key(r.redisKey(key)).Build()
	data, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, fmt.Errorf("%w: get: %w", domain.ErrCacheUnavailable, err)
	}

	var res result.Result
	if err := json.Unmarshal(data, &res); err != nil {
		// Corrupted entry: report a miss so the search recomputes it.
		return result.Result{}, false, nil
	}
	return res, true, nil
}

// Put stores a result with the configured TTL.
func (r *Redis) Put(ctx context.Context, key string, res result.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	cmd := r.client.B().Set().Key(r.redisKey(key)).Value(string(data)).Ex(r.ttl).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: set: %w", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Clear removes every cache entry under the configured prefix.
func (r *Redis) Clear(ctx context.Context) error {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	cmd := r.client.B().Del().Key(keys...).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: del: %w", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Stats counts live entries under the prefix. Expired keys have already been
// dropped by the store, so the count reflects valid entries only.
func (r *Redis) Stats(ctx context.Context) (Stats, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Entries:       len(keys),
		MaxAgeSeconds: int(r.ttl.Seconds()),
	}, nil
}

// Close shuts down the client.
func (r *Redis) Close() {
	r.client.Close()
}

func (r *Redis) redisKey(key string) string {
	// Fingerprints are JSON; hash them to keep keys short and safe.
	h := sha256.Sum256([]byte(key))
	return r.prefix + hex.EncodeToString(h[:])
}

func (r *Redis) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		cmd := r.client.B().Scan().Cursor(cursor).Match(r.prefix + "*").Count(scanBatch).Build()
		entry, err := r.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %w", domain.ErrCacheUnavailable, err)
		}
		keys = append(keys, entry.Elements...)
		cursor = entry.Cursor
		if cursor == 0 {
			return keys, nil
		}
	}
}
