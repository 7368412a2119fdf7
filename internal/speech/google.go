package speech

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lepinkainen/moviequiz/internal/errors"
)

const (
	defaultTTSURL = "https://translate.google.com/translate_tts"
	// MaxChunkLength is the longest text the TTS endpoint accepts per request.
	MaxChunkLength = 100
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// GoogleSynthesizer uses the Google Translate TTS endpoint. Each chunk is
// returned as an MP3 stream and the streams are concatenated.
type GoogleSynthesizer struct {
	baseURL    string
	httpClient HTTPDoer
}

// Option is a functional option for configuring the GoogleSynthesizer.
type Option func(*GoogleSynthesizer)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(g *GoogleSynthesizer) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// WithBaseURL sets a custom TTS endpoint.
func WithBaseURL(base string) Option {
	return func(g *GoogleSynthesizer) {
		if base != "" {
			g.baseURL = base
		}
	}
}

// NewGoogleSynthesizer creates a new GoogleSynthesizer.
func NewGoogleSynthesizer(opts ...Option) *GoogleSynthesizer {
	g := &GoogleSynthesizer{
		baseURL:    defaultTTSURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Synthesize implements Synthesizer.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, lang, path string) error {
	chunks := SplitText(text, MaxChunkLength)
	if len(chunks) == 0 {
		return fmt.Errorf("no text to speak")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer func() { _ = file.Close() }()

	for i, chunk := range chunks {
		if err := g.fetchChunk(ctx, file, chunk, lang, i, len(chunks)); err != nil {
			return err
		}
	}

	return file.Close()
}

func (g *GoogleSynthesizer) fetchChunk(ctx context.Context, w io.Writer, chunk, lang string, idx, total int) error {
	endpoint, err := url.Parse(g.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	query := endpoint.Query()
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", lang)
	query.Set("q", chunk)
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(idx))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	slog.Debug("Fetching speech chunk", "idx", idx, "total", total, "lang", lang)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch speech: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewHTTPStatusError(endpoint.String(), resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write speech: %w", err)
	}
	return nil
}

// SplitText splits text into chunks of at most limit runes, breaking on
// whitespace. Words longer than limit are split mid-word.
func SplitText(text string, limit int) []string {
	var (
		chunks  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.FieldsFunc(text, unicode.IsSpace) {
		runes := []rune(word)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}

		switch {
		case len(current) == 0:
			current = append(current, runes...)
		case len(current)+1+len(runes) <= limit:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = append(current, runes...)
		}
	}
	flush()

	return chunks
}
