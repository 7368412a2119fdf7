// Package quiz runs the three reveal phases of a movie quiz: keywords, then
// the description, then the title.
package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/lepinkainen/moviequiz/internal/config"
	"github.com/lepinkainen/moviequiz/internal/movie"
)

const (
	DescriptionLabel = "Here is the movie description:"
	TitleLabel       = "The title of the movie is"

	// SkipToken ends the keyword phase when typed at a keyword prompt.
	SkipToken = "skip"

	NoKeywordsNotice    = "No keywords could be found"
	NoDescriptionNotice = "A description was not provided"
	NoTitleNotice       = "A title was not provided"
)

// Translator translates quiz text from English.
type Translator interface {
	To(ctx context.Context, text, target string) (string, error)
	Title(ctx context.Context, title, target string) (string, error)
}

// Speaker vocalizes a reveal.
type Speaker interface {
	Speak(ctx context.Context, original, translated string) error
}

// Quiz presents one movie.
type Quiz struct {
	cfg        config.Config
	translator Translator
	speaker    Speaker

	in    *bufio.Reader
	out   io.Writer
	sleep func(time.Duration)
	rand  *rand.Rand
	typer *Typer
}

// Option is a functional option for configuring a Quiz.
type Option func(*Quiz)

// WithInput sets the operator input stream.
func WithInput(r io.Reader) Option {
	return func(q *Quiz) {
		if r != nil {
			q.in = bufio.NewReader(r)
		}
	}
}

// WithOutput sets the quiz output stream.
func WithOutput(w io.Writer) Option {
	return func(q *Quiz) {
		if w != nil {
			q.out = w
		}
	}
}

// WithSleep replaces time.Sleep.
func WithSleep(sleep func(time.Duration)) Option {
	return func(q *Quiz) {
		if sleep != nil {
			q.sleep = sleep
		}
	}
}

// WithRand sets the random source used for shuffling and typing delays.
func WithRand(r *rand.Rand) Option {
	return func(q *Quiz) {
		if r != nil {
			q.rand = r
		}
	}
}

// New creates a Quiz reading from stdin and writing to stdout unless
// overridden.
func New(cfg config.Config, translator Translator, speaker Speaker, opts ...Option) *Quiz {
	q := &Quiz{
		cfg:        cfg,
		translator: translator,
		speaker:    speaker,
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		sleep:      time.Sleep,
		rand:       NewRand(cfg.Quiz.Seed),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.typer = NewTyper(q.out, q.sleep, q.rand)
	return q
}

// NewRand returns a PCG source for seed, or a time seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|1))
}

// Run plays all three phases. A missing keyword list, description or title
// prints a notice and ends the run without error.
func (q *Quiz) Run(ctx context.Context, m movie.Movie) error {
	if len(m.Keywords) == 0 {
		return q.println(NoKeywordsNotice)
	}
	if err := q.RunKeywords(ctx, m.Keywords); err != nil {
		return err
	}

	if m.Description == "" {
		return q.println(NoDescriptionNotice)
	}
	if err := q.ShowDescription(ctx, m.Description); err != nil {
		return err
	}
	if _, err := q.wait(); err != nil {
		return err
	}

	if m.Title == "" {
		return q.println(NoTitleNotice)
	}
	return q.ShowTitle(ctx, m.Title)
}

// SelectKeywords shuffles keywords, drops names containing a hyphen and
// keeps at most limit names.
func SelectKeywords(keywords []movie.Keyword, r *rand.Rand, limit int) []string {
	shuffled := append([]movie.Keyword(nil), keywords...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	names := make([]string, 0, len(shuffled))
	for _, kw := range shuffled {
		if strings.Contains(kw.Name, "-") {
			continue
		}
		names = append(names, kw.Name)
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

// RunKeywords reveals keywords one at a time until the list is exhausted or
// the operator types the skip token.
func (q *Quiz) RunKeywords(ctx context.Context, keywords []movie.Keyword) error {
	names := SelectKeywords(keywords, q.rand, q.cfg.Quiz.MaxKeywords)
	slog.Debug("Keyword phase", "available", len(keywords), "shown", len(names))

	for _, name := range names {
		translated, err := q.translator.To(ctx, name, q.cfg.Language)
		if err != nil {
			return err
		}
		if err := q.typer.Type(translated, q.cfg.Typing.Speed); err != nil {
			return err
		}
		if q.cfg.Speech.Keywords {
			if err := q.speaker.Speak(ctx, name, translated); err != nil {
				return err
			}
		}

		line, err := q.wait()
		if err != nil {
			return err
		}
		if line == SkipToken {
			slog.Debug("Keyword phase skipped")
			break
		}
	}
	return nil
}

// ShowDescription reveals the translated label and description.
func (q *Quiz) ShowDescription(ctx context.Context, description string) error {
	label, err := q.translator.To(ctx, DescriptionLabel, q.cfg.Language)
	if err != nil {
		return err
	}
	if err := q.typer.Type(label, q.cfg.Typing.Speed); err != nil {
		return err
	}

	translated, err := q.translator.To(ctx, description, q.cfg.Language)
	if err != nil {
		return err
	}
	if err := q.typer.Type(translated, q.cfg.Typing.DescriptionSpeed); err != nil {
		return err
	}

	if !q.cfg.Speech.Description {
		return nil
	}
	if err := q.speaker.Speak(ctx, DescriptionLabel, label); err != nil {
		return err
	}
	return q.speaker.Speak(ctx, description, translated)
}

// ShowTitle reveals the translated label and the localized title.
func (q *Quiz) ShowTitle(ctx context.Context, title string) error {
	label, err := q.translator.To(ctx, TitleLabel, q.cfg.Language)
	if err != nil {
		return err
	}
	if err := q.typer.Type(label, q.cfg.Typing.Speed); err != nil {
		return err
	}

	localized, err := q.translator.Title(ctx, title, q.cfg.Language)
	if err != nil {
		return err
	}
	if err := q.typer.Type(localized, q.cfg.Typing.Speed); err != nil {
		return err
	}

	if !q.cfg.Speech.Title {
		return nil
	}
	if err := q.speaker.Speak(ctx, TitleLabel, label); err != nil {
		return err
	}
	return q.speaker.Speak(ctx, title, localized)
}

// wait blocks for one line of input when skippable, otherwise it sleeps for
// the pause and prints a blank line. End of input counts as an empty line.
func (q *Quiz) wait() (string, error) {
	if !q.cfg.Quiz.Skippable {
		q.sleep(q.cfg.Quiz.Pause)
		return "", q.println("")
	}

	line, err := q.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (q *Quiz) println(s string) error {
	if _, err := fmt.Fprintln(q.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
