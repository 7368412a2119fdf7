package imdbapi

import (
	"github.com/lepinkainen/moviequiz/internal/cache"
	"github.com/lepinkainen/moviequiz/internal/errors"
)

// getCached retrieves data from the imdb-api cache, checking the daily quota
// flag first. Failed lookups are never cached.
func getCached[T any](cacheKey string, fetcher func() (*T, error)) (*T, bool, error) {
	if !RequestsAllowed() {
		return nil, false, errors.NewRateLimitError("imdb-api request limit reached")
	}

	data, fromCache, err := cache.GetOrFetch(cache.IMDbAPITable, cacheKey, fetcher)
	if errors.IsRateLimitError(err) {
		MarkRateLimitReached()
	}
	return data, fromCache, err
}
