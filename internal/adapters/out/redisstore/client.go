// Package redisstore keeps short-lived keys in Redis: payment idempotency
// reservations and revoked access tokens.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace      = "emb"
	idempotencyPrefix = "idempotency"
	denylistPrefix    = "denied_token"
)

var errNotInitialized = errors.New("redis client not initialized")

type cmdable interface {
	Ping(ctx context.Context) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Options struct {
	// URL wins over Address when both are set.
	URL          string
	Address      string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Client implements ports.IdempotencyStore and ports.TokenDenylist.
type Client struct {
	store cmdable
	raw   *redis.Client
	now   func() time.Time
}

// New connects and pings the server.
func New(ctx context.Context, opts Options) (*Client, error) {
	redisOpts, err := optionsFrom(opts)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(redisOpts)
	if err = raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{store: raw, raw: raw, now: time.Now}, nil
}

func optionsFrom(opts Options) (*redis.Options, error) {
	if opts.URL == "" && opts.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var out *redis.Options
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		out = parsed
	} else {
		out = &redis.Options{
			Addr:     opts.Address,
			Password: opts.Password,
			DB:       opts.DB,
		}
	}
	if out.DB == 0 {
		out.DB = opts.DB
	}
	if out.PoolSize == 0 {
		out.PoolSize = opts.PoolSize
	}
	if out.DialTimeout == 0 {
		out.DialTimeout = opts.DialTimeout
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = opts.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = opts.WriteTimeout
	}
	return out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	return c.store.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// Reserve claims key for ttl. It reports false when the key is already held.
func (c *Client) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if c == nil || c.store == nil {
		return false, errNotInitialized
	}
	if strings.TrimSpace(key) == "" {
		return false, errors.New("idempotency key is required")
	}
	return c.store.SetNX(ctx, c.idempotencyKey(key), c.now().UTC().Format(time.RFC3339), ttl).Result()
}

func (c *Client) Release(ctx context.Context, key string) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	return c.store.Del(ctx, c.idempotencyKey(key)).Err()
}

// Deny stores tokenID until the token would have expired. Tokens already
// past their expiry need no entry.
func (c *Client) Deny(ctx context.Context, tokenID string, until time.Time) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	ttl := until.Sub(c.now())
	if ttl <= 0 {
		return nil
	}
	return c.store.SetNX(ctx, c.denylistKey(tokenID), "1", ttl).Err()
}

func (c *Client) IsDenied(ctx context.Context, tokenID string) (bool, error) {
	if c == nil || c.store == nil {
		return false, errNotInitialized
	}
	n, err := c.store.Exists(ctx, c.denylistKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Client) idempotencyKey(key string) string {
	return buildKey(idempotencyPrefix, key)
}

func (c *Client) denylistKey(tokenID string) string {
	return buildKey(denylistPrefix, tokenID)
}

func buildKey(parts ...string) string {
	clean := make([]string, 0, len(parts)+1)
	clean = append(clean, keyNamespace)
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, ":")
}
