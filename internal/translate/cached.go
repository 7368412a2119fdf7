package translate

import (
	"context"
	"strings"

	"github.com/lepinkainen/moviequiz/internal/cache"
)

// CachedEngine stores translations in the translation cache table.
type CachedEngine struct {
	Engine Engine
}

// NewCachedEngine wraps engine with the SQLite cache.
func NewCachedEngine(engine Engine) *CachedEngine {
	return &CachedEngine{Engine: engine}
}

// Translate implements Engine.
func (c *CachedEngine) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := strings.Join([]string{source, target, text}, "|")
	translated, _, err := cache.GetOrFetchWithPolicy(cache.TranslationTable, key, func() (string, error) {
		return c.Engine.Translate(ctx, text, source, target)
	}, func(s string) bool { return s != "" })
	return translated, err
}
