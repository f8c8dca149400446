package server

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

const cachePrefix = "fips:envelope:"

// Versioner identifies the current contents of the data files.
type Versioner interface {
	Version(names ...string) (string, error)
}

// ResponseCache stores encoded result envelopes in redis. Keys include the
// data version, so rewriting any data file makes old entries unreachable.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(addr, password string, db int, ttl time.Duration) *ResponseCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &ResponseCache{client: rdb, ttl: ttl}
}

func CacheKey(version, requestURI string) string {
	return cachePrefix + version + "|" + requestURI
}

func (c *ResponseCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns a cached envelope. Misses and redis errors both report false.
func (c *ResponseCache) Get(ctx context.Context, key string) (*types.ResultEnvelope, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("response cache read failed")
		}
		return nil, false
	}
	env := &types.ResultEnvelope{}
	if err = sonic.ConfigStd.Unmarshal(data, env); err != nil {
		logrus.WithError(err).Warn("dropping undecodable cache entry")
		return nil, false
	}
	return env, true
}

// Set stores the envelope. Degraded envelopes are never cached.
func (c *ResponseCache) Set(ctx context.Context, key string, env *types.ResultEnvelope) {
	if env.Degraded {
		return
	}
	data, err := sonic.ConfigStd.Marshal(env)
	if err != nil {
		logrus.WithError(err).Warn("could not encode envelope for cache")
		return
	}
	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("response cache write failed")
	}
}

func (c *ResponseCache) Close() error {
	return c.client.Close()
}
