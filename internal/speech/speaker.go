// Package speech vocalizes quiz text through a synthesizer and an audio
// player, using a single transient audio file.
package speech

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lepinkainen/moviequiz/internal/config"
	"github.com/lepinkainen/moviequiz/internal/fileutil"
)

// MissingArtifactNotice is printed when the audio file is gone at cleanup.
const MissingArtifactNotice = "The mp3 file could not be created"

// Translator translates English text into a target language.
type Translator interface {
	To(ctx context.Context, text, target string) (string, error)
}

// Synthesizer renders text in the given voice language to an audio file at path.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang, path string) error
}

// Player plays the audio file at path to completion.
type Player interface {
	Play(ctx context.Context, path string) error
}

// Speaker speaks quiz text. The zero value and a nil Speaker are silent.
type Speaker struct {
	enabled       bool
	displayLang   string
	speechLang    string
	pronunciation string
	file          string

	translator  Translator
	synthesizer Synthesizer
	player      Player
	out         io.Writer
}

// NewSpeaker creates a Speaker. displayLang is the language quiz text is shown in.
func NewSpeaker(cfg config.Speech, displayLang string, translator Translator, synthesizer Synthesizer, player Player, out io.Writer) *Speaker {
	if out == nil {
		out = os.Stdout
	}
	return &Speaker{
		enabled:       cfg.Enabled,
		displayLang:   displayLang,
		speechLang:    cfg.Language,
		pronunciation: cfg.Pronunciation,
		file:          cfg.File,
		translator:    translator,
		synthesizer:   synthesizer,
		player:        player,
		out:           out,
	}
}

// Enabled reports whether Speak does anything.
func (s *Speaker) Enabled() bool {
	return s != nil && s.enabled
}

// Speak vocalizes translated when the display language is the speech
// language, and original translated into the speech language otherwise.
func (s *Speaker) Speak(ctx context.Context, original, translated string) error {
	if !s.Enabled() {
		return nil
	}

	text := translated
	if s.displayLang != s.speechLang {
		var err error
		text, err = s.translator.To(ctx, original, s.speechLang)
		if err != nil {
			return fmt.Errorf("failed to translate text for speech: %w", err)
		}
	}

	slog.Debug("Speaking", "lang", s.pronunciation, "file", s.file)

	if err := s.synthesizer.Synthesize(ctx, text, s.pronunciation, s.file); err != nil {
		_ = fileutil.RemoveIfExists(s.file)
		return fmt.Errorf("failed to synthesize speech: %w", err)
	}
	if err := s.player.Play(ctx, s.file); err != nil {
		_ = fileutil.RemoveIfExists(s.file)
		return fmt.Errorf("failed to play speech: %w", err)
	}

	if !fileutil.FileExists(s.file) {
		_, _ = fmt.Fprintln(s.out, MissingArtifactNotice)
		return nil
	}
	return fileutil.RemoveIfExists(s.file)
}
