// Package translate converts English quiz text into the configured display
// language.
package translate

import (
	"context"
	"fmt"

	"github.com/lepinkainen/moviequiz/internal/catalog"
	"github.com/lepinkainen/moviequiz/internal/config"
)

// Engine performs machine translation from source to target.
type Engine interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// German is the only language whose titles come from a dictionary.
const German = "de"

// Translator translates quiz text from English.
type Translator struct {
	engine Engine
	titles map[string]catalog.Dictionary
}

// New creates a Translator. Only the German entry of titles is consulted.
func New(engine Engine, titles map[string]catalog.Dictionary) *Translator {
	return &Translator{engine: engine, titles: titles}
}

// To translates English text into target. English is returned unchanged.
func (t *Translator) To(ctx context.Context, text, target string) (string, error) {
	if target == config.English {
		return text, nil
	}
	if t.engine == nil {
		return "", fmt.Errorf("no translation engine configured for %q", target)
	}
	translated, err := t.engine.Translate(ctx, text, config.English, target)
	if err != nil {
		return "", fmt.Errorf("failed to translate to %s: %w", target, err)
	}
	return translated, nil
}

// Title translates a movie title. German titles come from the dictionary and
// fall back to machine translation when not listed.
func (t *Translator) Title(ctx context.Context, title, target string) (string, error) {
	if target == config.English {
		return title, nil
	}
	if target == German {
		if localized, ok := t.titles[German].Lookup(title); ok {
			return localized, nil
		}
	}
	return t.To(ctx, title, target)
}
