// Package record fetches provider responses for every catalog movie and
// stores them as fixtures for offline quiz runs.
package record

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lepinkainen/moviequiz/internal/catalog"
	"github.com/lepinkainen/moviequiz/internal/errors"
	"github.com/lepinkainen/moviequiz/internal/mdblist"
	"github.com/lepinkainen/moviequiz/internal/ratelimit"
)

// DefaultInterval spaces consecutive provider requests.
const DefaultInterval = 2 * time.Second

// Params configures a recording run.
type Params struct {
	Catalog  *catalog.Catalog
	Client   mdblist.Fetcher
	Fixtures mdblist.FixtureStore
	// Limiter spaces requests; nil disables spacing
	Limiter *ratelimit.Limiter
	Out     io.Writer
}

// Summary counts what a run did.
type Summary struct {
	Recorded int
	Skipped  int
}

// Run records a fixture for every catalog identifier that has none yet.
// A non-2xx answer prints its status category and ends the run.
func Run(ctx context.Context, p Params) (Summary, error) {
	var summary Summary

	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	for _, entry := range p.Catalog.Entries() {
		if p.Fixtures.Exists(entry.ID) {
			slog.Debug("Fixture exists, skipping", "title", entry.Title, "imdb_id", entry.ID)
			summary.Skipped++
			continue
		}

		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !p.Limiter.Allow() {
			slog.Debug("Waiting for rate limiter", "limiter", p.Limiter.Name(), "imdb_id", entry.ID)
			if err := p.Limiter.Wait(ctx); err != nil {
				return summary, err
			}
		}

		body, err := p.Client.Fetch(ctx, entry.ID)
		if statusErr, ok := errors.AsHTTPStatusError(err); ok {
			_, _ = fmt.Fprintln(out, statusErr.Category())
			return summary, nil
		}
		if err != nil {
			return summary, fmt.Errorf("failed to fetch %s: %w", entry.ID, err)
		}

		id, err := recordedID(body, entry.ID)
		if err != nil {
			return summary, err
		}
		if err := p.Fixtures.Write(id, body); err != nil {
			return summary, err
		}

		slog.Info("Recorded fixture", "title", entry.Title, "imdb_id", id, "path", p.Fixtures.Path(id))
		summary.Recorded++
	}

	slog.Info("Recording finished", "recorded", summary.Recorded, "skipped", summary.Skipped)
	return summary, nil
}

// recordedID returns the identifier the provider reports for the document,
// falling back to the requested one.
func recordedID(body []byte, requested string) (string, error) {
	var doc struct {
		IMDbID string `json:"imdbid"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("invalid response for %s: %w", requested, err)
	}
	if doc.IMDbID == "" {
		slog.Warn("Response has no imdbid, using requested identifier", "imdb_id", requested)
		return requested, nil
	}
	return doc.IMDbID, nil
}
