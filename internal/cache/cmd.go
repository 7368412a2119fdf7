package cache

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// InvalidateCacheCmd represents the cache invalidate subcommand
type InvalidateCacheCmd struct {
	Source string `arg:"" help:"Cache source to invalidate: translation, imdbapi" required:""`
}

func (i *InvalidateCacheCmd) Run() error {
	tableName, ok := SourceTables[i.Source]
	if !ok {
		return fmt.Errorf("invalid cache source '%s'; valid sources are: %s", i.Source, strings.Join(sourceNames(), ", "))
	}

	cacheInstance, err := GetGlobalCache()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	slog.Info("Invalidating cache", "source", i.Source, "database", cacheInstance.Path())

	rowsDeleted, err := cacheInstance.InvalidateSource(tableName)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	slog.Info("Cache invalidated", "source", i.Source, "rows_deleted", rowsDeleted)
	return nil
}

// PruneCacheCmd represents the cache prune subcommand
type PruneCacheCmd struct{}

// Run removes entries older than cache.ttl from every cache table.
func (p *PruneCacheCmd) Run() error {
	cacheInstance, err := GetGlobalCache()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	ttl := configuredTTL()
	slog.Info("Pruning expired cache entries", "database", cacheInstance.Path(), "ttl", ttl)

	for _, name := range sourceNames() {
		if err := cacheInstance.ClearExpired(SourceTables[name], ttl); err != nil {
			return fmt.Errorf("failed to prune %s cache: %w", name, err)
		}
	}
	return nil
}

func sourceNames() []string {
	names := make([]string, 0, len(SourceTables))
	for name := range SourceTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
