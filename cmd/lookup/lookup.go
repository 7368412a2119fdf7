// Package lookup resolves a title to its IMDb identifier and reports where
// it can be streamed.
package lookup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lepinkainen/moviequiz/internal/errors"
	"github.com/lepinkainen/moviequiz/internal/imdbapi"
	"github.com/lepinkainen/moviequiz/internal/tui"
)

const (
	TitleFailedNotice   = "Title could not be loaded"
	NetflixFailedNotice = "Netflix availability could not be loaded"
	PrimeFailedNotice   = "Amazon availability could not be loaded"
)

// Client is the subset of the imdb-api client used by a lookup.
type Client interface {
	SearchTitle(ctx context.Context, query string) ([]imdbapi.SearchResult, error)
	ExternalSites(ctx context.Context, id string) (*imdbapi.ExternalSites, error)
	AdvancedSearch(ctx context.Context, title, availability string) (*imdbapi.AdvancedSearchResponse, error)
}

var selectResult = tui.Select

// Params configures a lookup.
type Params struct {
	Query string
	// IDOnly prints "<title>: <id>" and skips the availability checks
	IDOnly bool
	// Interactive lets the user pick among the search results
	Interactive bool
	Out         io.Writer
}

// Run performs the lookup. Each stage reports its own failure and the
// following stages still run.
func Run(ctx context.Context, client Client, p Params) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	id, title, err := resolve(ctx, client, p)
	if errors.IsStopProcessingError(err) {
		return err
	}
	if err != nil {
		logStageFailure("search", err, "query", p.Query)
		_, _ = fmt.Fprintln(out, TitleFailedNotice)
	}

	if p.IDOnly {
		if err == nil {
			_, _ = fmt.Fprintf(out, "%s: %s\n", title, id)
		}
		return nil
	}

	if title == "" {
		title = p.Query
	}

	checkNetflix(ctx, client, out, id, title)
	checkPrime(ctx, client, out, id, title)
	return nil
}

func resolve(ctx context.Context, client Client, p Params) (string, string, error) {
	results, err := client.SearchTitle(ctx, p.Query)
	if err != nil {
		return "", "", err
	}

	chosen := results[0]
	if p.Interactive {
		selection, err := selectResult(p.Query, results)
		if err != nil {
			return "", "", fmt.Errorf("selection failed: %w", err)
		}
		switch selection.Action {
		case tui.ActionStopped:
			return "", "", errors.NewStopProcessingError("lookup stopped by user")
		case tui.ActionSelected:
			chosen = *selection.Selection
		}
	}

	slog.Debug("Resolved title", "query", p.Query, "id", chosen.ID, "title", chosen.Title)
	return chosen.ID, chosen.Title, nil
}

func checkNetflix(ctx context.Context, client Client, out io.Writer, id, title string) {
	sites, err := client.ExternalSites(ctx, id)
	if err != nil {
		logStageFailure("netflix", err, "id", id)
		_, _ = fmt.Fprintln(out, NetflixFailedNotice)
		return
	}

	if sites.Netflix != nil && sites.Netflix.URL != "" {
		_, _ = fmt.Fprintf(out, "%s can possibly be streamed on netflix\n", title)
		_, _ = fmt.Fprintln(out, sites.Netflix.URL)
	}
}

func checkPrime(ctx context.Context, client Client, out io.Writer, id, title string) {
	resp, err := client.AdvancedSearch(ctx, title, imdbapi.PrimeAvailability)
	if err != nil {
		logStageFailure("prime", err, "title", title)
		_, _ = fmt.Fprintln(out, PrimeFailedNotice)
		return
	}

	if id != "" && resp.Contains(id) {
		_, _ = fmt.Fprintf(out, "%s can be streamed on prime video\n", title)
	}
}

// logStageFailure surfaces the provider's retry hint when a stage hit the
// imdb-api quota. Other failures are only logged at debug level.
func logStageFailure(stage string, err error, attrs ...any) {
	attrs = append(attrs, "stage", stage, "error", err)
	if rateErr, ok := errors.AsRateLimitError(err); ok && rateErr.RetryAfter > 0 {
		slog.Warn("imdb-api rate limit reached", append(attrs, "retry_after", rateErr.RetryAfter)...)
		return
	}
	slog.Debug("Lookup stage failed", attrs...)
}
