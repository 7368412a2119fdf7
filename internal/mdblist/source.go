package mdblist

import (
	"context"
	"log/slog"
)

// Fetcher is satisfied by Client.
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// Source resolves identifiers to JSON documents, either from fixtures or
// from the live API depending on Live.
type Source struct {
	Live     bool
	Client   Fetcher
	Fixtures FixtureStore
}

// Fetch returns the raw document for id.
func (s Source) Fetch(ctx context.Context, id string) ([]byte, error) {
	if !s.Live {
		slog.Debug("Reading fixture", "imdb_id", id, "path", s.Fixtures.Path(id))
		return s.Fixtures.Read(id)
	}
	return s.Client.Fetch(ctx, id)
}
