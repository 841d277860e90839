// Package brandcache memoizes brand identity analyses for the lifetime of
// the process. The analysis for a brand is computed once and read by every
// category generator in every subsequent request; concurrent first access
// is collapsed into a single upstream call.
package brandcache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/prompts"
)

// Analysis generation tuning, matching the brand-brief prompt.
const (
	analysisTemperature = 0.6
	analysisMaxTokens   = 2000
)

// TextGenerator is the slice of the model gateway the cache needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
}

// Cache is a process-lifetime map from brand name to analysis text.
//
// The key is the brand name, not a full profile hash: two profiles sharing
// a name but differing in guideline content return the first-computed
// analysis. No eviction and no TTL. Errors are never cached, so a failed
// computation is retried on the next call.
type Cache struct {
	generator TextGenerator
	logger    *slog.Logger

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]string
}

// New creates an empty Cache backed by the given text generator.
func New(generator TextGenerator, logger *slog.Logger) *Cache {
	return &Cache{
		generator: generator,
		logger:    logger.With("component", "brand_analysis_cache"),
		entries:   make(map[string]string),
	}
}

// GetOrCompute returns the cached analysis for the profile's brand name,
// computing and storing it on first access. Concurrent callers for the
// same uncached brand share one upstream call.
func (c *Cache) GetOrCompute(ctx context.Context, profile *domain.BrandProfile) (string, error) {
	key := profile.BrandName

	c.mu.RLock()
	analysis, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.logger.DebugContext(ctx, "brand analysis cache hit", "brand", key)
		return analysis, nil
	}

	result, err, shared := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a previous flight may have stored
		// the value between our read and Do.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		c.logger.InfoContext(ctx, "computing brand analysis", "brand", key)
		text, err := c.generator.GenerateText(ctx,
			prompts.BrandAnalysis(profile), analysisTemperature, analysisMaxTokens)
		if err != nil {
			return "", fmt.Errorf("failed to analyze brand %q: %w", key, err)
		}

		c.mu.Lock()
		c.entries[key] = text
		c.mu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}

	if shared {
		c.logger.DebugContext(ctx, "brand analysis call shared with concurrent caller", "brand", key)
	}

	return result.(string), nil
}

// Len reports the number of cached analyses.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
