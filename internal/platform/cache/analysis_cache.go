// Package cache provides Redis-backed caching for analysis results.
package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"growth_backend/internal/feature/analysis/domain/entity"
	"growth_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultTTL is used when the configured TTL is not positive.
	DefaultTTL = time.Hour
	// DefaultNamespace prefixes every cache key.
	DefaultNamespace = "analysis"
)

// AnalysisCache stores generated analyses in Redis keyed by a hash of the business profile.
// A nil Redis client turns every operation into a no-op miss.
type AnalysisCache struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.AnalysisCache = (*AnalysisCache)(nil)

// NewAnalysisCache creates an AnalysisCache.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "analysis".
func NewAnalysisCache(rdb *redis.Client, ttl time.Duration, namespace string) *AnalysisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &AnalysisCache{rdb: rdb, ttl: ttl, namespace: namespace}
}

// Get returns the cached analysis for the profile, or (nil, nil) on a miss.
func (c *AnalysisCache) Get(ctx context.Context, profile entity.BusinessProfile) (*entity.AnalysisResult, error) {
	if c.rdb == nil {
		return nil, nil
	}

	key := c.cacheKey(profile)
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var out entity.AnalysisResult
	if err := json.Unmarshal(b, &out); err != nil {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
		return nil, nil
	}
	// The key folds case, so the entry may carry another caller's spelling of the name.
	if name := strings.TrimSpace(profile.BusinessName); name != "" {
		out.BusinessName = name
	}
	return &out, nil
}

// Set stores the analysis for the profile with the configured TTL.
func (c *AnalysisCache) Set(ctx context.Context, profile entity.BusinessProfile, result *entity.AnalysisResult) error {
	if c.rdb == nil || result == nil {
		return nil
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	return c.rdb.Set(ctx, c.cacheKey(profile), b, c.ttl).Err()
}

// cacheKey generates a cache key for a profile. Fields are normalized so that
// whitespace and letter case differences map to the same entry.
func (c *AnalysisCache) cacheKey(profile entity.BusinessProfile) string {
	fields := []string{
		profile.BusinessName,
		profile.Industry,
		profile.BusinessDescription,
		profile.BusinessAge.String(),
		profile.TeamSize.String(),
	}
	for i, f := range fields {
		fields[i] = normalize(f)
	}
	sum := blake2b.Sum256([]byte(strings.Join(fields, "\x1f")))
	return c.namespace + ":" + hex.EncodeToString(sum[:])
}

// normalize lowercases and collapses runs of whitespace.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
