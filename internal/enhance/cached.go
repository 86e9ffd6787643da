package enhance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"

	"canvas-assistant-backend/internal/assistant"
	"canvas-assistant-backend/internal/logx"
	"canvas-assistant-backend/internal/metrics"
	"canvas-assistant-backend/internal/store"
)

// Cached reuses enhanced replies for the same intent, normalized message and
// base reply. Cache errors are logged and treated as misses.
type Cached struct {
	next      Enhancer
	cache     store.Cache
	ttl       time.Duration
	minLength int
}

func NewCached(next Enhancer, cache store.Cache, ttl time.Duration, minLength int) *Cached {
	return &Cached{next: next, cache: cache, ttl: ttl, minLength: minLength}
}

func cacheKey(in Input) string {
	h := sha256.New()
	h.Write([]byte(in.Intent))
	h.Write([]byte{0})
	h.Write([]byte(assistant.Normalize(in.UserMessage)))
	h.Write([]byte{0})
	h.Write([]byte(in.BaseResponse))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cached) Enhance(ctx context.Context, in Input) (string, error) {
	key := cacheKey(in)
	v, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		logx.Warn().Err(err).Msg("reply cache lookup failed")
	case ok:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return v, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	out, err := c.next.Enhance(ctx, in)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(strings.TrimSpace(out)) >= c.minLength {
		if err := c.cache.Set(ctx, key, out, c.ttl); err != nil {
			logx.Warn().Err(err).Msg("reply cache write failed")
		}
	}
	return out, nil
}
