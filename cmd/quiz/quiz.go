// Package quiz wires the catalog, provider, translation and speech
// components into one quiz run.
package quiz

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lepinkainen/moviequiz/internal/catalog"
	"github.com/lepinkainen/moviequiz/internal/config"
	"github.com/lepinkainen/moviequiz/internal/errors"
	"github.com/lepinkainen/moviequiz/internal/mdblist"
	"github.com/lepinkainen/moviequiz/internal/movie"
	presenter "github.com/lepinkainen/moviequiz/internal/quiz"
	"github.com/lepinkainen/moviequiz/internal/speech"
	"github.com/lepinkainen/moviequiz/internal/translate"
)

// Options carries the I/O endpoints of a run. Zero values use the process
// defaults.
type Options struct {
	In    io.Reader
	Out   io.Writer
	Sleep func(time.Duration)
	// HTTPClient is used by every outgoing request when set
	HTTPClient *http.Client
}

// Play runs one quiz: banner, pick, fetch, parse and the three reveal phases.
// A non-2xx provider answer prints its status category and ends the run.
func Play(ctx context.Context, cfg config.Config, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	data, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}

	r := presenter.NewRand(cfg.Quiz.Seed)

	if _, err := fmt.Fprintln(out, presenter.Banner()); err != nil {
		return err
	}

	id := data.Catalog.PickID(r)
	slog.Debug("Picked movie", "imdb_id", id, "live", cfg.MDBList.Enabled)

	body, err := newSource(cfg, opts).Fetch(ctx, id)
	if statusErr, ok := errors.AsHTTPStatusError(err); ok {
		slog.Debug("Provider refused request", "status", statusErr.StatusCode)
		_, err = fmt.Fprintln(out, statusErr.Category())
		return err
	}
	if err != nil {
		return err
	}

	m, err := movie.Parse(body)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	if cfg.MDBList.Enabled {
		if remaining, ok := m.RemainingAPICalls(); ok {
			if _, err := fmt.Fprintf(out, "%d calls left\n\n", remaining); err != nil {
				return err
			}
		}
	}

	translator := newTranslator(cfg, opts, data.Titles)
	speaker := newSpeaker(cfg, opts, translator, out)

	q := presenter.New(cfg, translator, speaker,
		presenter.WithInput(opts.In),
		presenter.WithOutput(out),
		presenter.WithSleep(opts.Sleep),
		presenter.WithRand(r),
	)
	return q.Run(ctx, m)
}

func newSource(cfg config.Config, opts Options) mdblist.Source {
	clientOpts := []mdblist.Option{
		mdblist.WithBaseURL(cfg.MDBList.URL),
		mdblist.WithHost(cfg.MDBList.Host),
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, mdblist.WithHTTPClient(opts.HTTPClient))
	}

	return mdblist.Source{
		Live:     cfg.MDBList.Enabled,
		Client:   mdblist.NewClient(cfg.MDBList.APIKey, clientOpts...),
		Fixtures: mdblist.FixtureStore{Dir: cfg.ResponsesDir},
	}
}

func newTranslator(cfg config.Config, opts Options, titles map[string]catalog.Dictionary) *translate.Translator {
	engineOpts := []translate.Option{translate.WithBaseURL(cfg.TranslateURL)}
	if opts.HTTPClient != nil {
		engineOpts = append(engineOpts, translate.WithHTTPClient(opts.HTTPClient))
	}

	engine := translate.NewGoogleEngine(engineOpts...)
	return translate.New(translate.NewCachedEngine(engine), titles)
}

func newSpeaker(cfg config.Config, opts Options, translator speech.Translator, out io.Writer) *speech.Speaker {
	synthOpts := []speech.Option{speech.WithBaseURL(cfg.Speech.URL)}
	if opts.HTTPClient != nil {
		synthOpts = append(synthOpts, speech.WithHTTPClient(opts.HTTPClient))
	}

	return speech.NewSpeaker(cfg.Speech, cfg.Language, translator,
		speech.NewGoogleSynthesizer(synthOpts...),
		speech.CommandPlayer{Command: cfg.Speech.Player},
		out,
	)
}
