// Package config builds the immutable run configuration from viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// English is the source language of all provider data.
const English = "en"

// Typing controls the human typing effect.
type Typing struct {
	// Speed is the characters-per-time-unit rate for labels, keywords and titles
	Speed float64
	// DescriptionSpeed is used for the description payload
	DescriptionSpeed float64
}

// Quiz controls pacing of the reveal phases.
type Quiz struct {
	MaxKeywords int
	// Skippable waits for operator input between reveals instead of sleeping
	Skippable bool
	Pause     time.Duration
	// Seed replays a run when non-zero
	Seed uint64
}

// Speech controls text-to-speech.
type Speech struct {
	Enabled     bool
	Keywords    bool
	Description bool
	Title       bool
	// Language is the language text is translated into before it is spoken
	Language string
	// Pronunciation is the voice language passed to the synthesizer
	Pronunciation string
	// File is the transient audio artifact
	File   string
	Player []string
	URL    string
}

// MDBList configures the movie metadata provider.
type MDBList struct {
	// Enabled permits live network access; fixtures are used otherwise
	Enabled bool
	URL     string
	Host    string
	APIKey  string
}

// IMDbAPI configures the lookup utility's provider.
type IMDbAPI struct {
	URL    string
	APIKey string
}

// Config is read once at startup and never mutated.
type Config struct {
	Language     string
	Typing       Typing
	Quiz         Quiz
	Speech       Speech
	MDBList      MDBList
	IMDbAPI      IMDbAPI
	ResponsesDir string
	CatalogFile  string
	TranslateURL string
}

// SetDefaults registers the default value of every key with viper.
func SetDefaults() {
	viper.SetDefault("language", English)

	viper.SetDefault("typing.speed", 80)
	viper.SetDefault("typing.description_speed", 500)

	viper.SetDefault("quiz.max_keywords", 15)
	viper.SetDefault("quiz.skippable", true)
	viper.SetDefault("quiz.pause", "1s")
	viper.SetDefault("quiz.seed", 0)

	viper.SetDefault("speech.enabled", true)
	viper.SetDefault("speech.keywords", true)
	viper.SetDefault("speech.description", false)
	viper.SetDefault("speech.title", false)
	viper.SetDefault("speech.language", English)
	viper.SetDefault("speech.pronunciation", English)
	viper.SetDefault("speech.file", "tts.mp3")
	viper.SetDefault("speech.player", []string{"mpg123", "-q"})
	viper.SetDefault("speech.url", "https://translate.google.com/translate_tts")

	viper.SetDefault("mdblist.enabled", false)
	viper.SetDefault("mdblist.url", "https://mdblist.p.rapidapi.com/")
	viper.SetDefault("mdblist.host", "mdblist.p.rapidapi.com")

	viper.SetDefault("imdbapi.url", "https://imdb-api.com")

	viper.SetDefault("translate.url", "https://translate.google.com/m")

	viper.SetDefault("responses.dir", "responses")
	viper.SetDefault("catalog.file", "")
}

// Load reads the configuration from viper and validates it.
func Load() (Config, error) {
	pause, err := time.ParseDuration(viper.GetString("quiz.pause"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid quiz.pause: %w", err)
	}

	cfg := Config{
		Language: viper.GetString("language"),
		Typing: Typing{
			Speed:            viper.GetFloat64("typing.speed"),
			DescriptionSpeed: viper.GetFloat64("typing.description_speed"),
		},
		Quiz: Quiz{
			MaxKeywords: viper.GetInt("quiz.max_keywords"),
			Skippable:   viper.GetBool("quiz.skippable"),
			Pause:       pause,
			Seed:        viper.GetUint64("quiz.seed"),
		},
		Speech: Speech{
			Enabled:       viper.GetBool("speech.enabled"),
			Keywords:      viper.GetBool("speech.keywords"),
			Description:   viper.GetBool("speech.description"),
			Title:         viper.GetBool("speech.title"),
			Language:      viper.GetString("speech.language"),
			Pronunciation: viper.GetString("speech.pronunciation"),
			File:          viper.GetString("speech.file"),
			Player:        viper.GetStringSlice("speech.player"),
			URL:           viper.GetString("speech.url"),
		},
		MDBList: MDBList{
			Enabled: viper.GetBool("mdblist.enabled"),
			URL:     viper.GetString("mdblist.url"),
			Host:    viper.GetString("mdblist.host"),
			APIKey:  viper.GetString("mdblist.api_key"),
		},
		IMDbAPI: IMDbAPI{
			URL:    viper.GetString("imdbapi.url"),
			APIKey: viper.GetString("imdbapi.api_key"),
		},
		ResponsesDir: viper.GetString("responses.dir"),
		CatalogFile:  viper.GetString("catalog.file"),
		TranslateURL: viper.GetString("translate.url"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and language codes.
func (c Config) Validate() error {
	for key, code := range map[string]string{
		"language":             c.Language,
		"speech.language":      c.Speech.Language,
		"speech.pronunciation": c.Speech.Pronunciation,
	} {
		if err := ValidateLanguage(code); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	if c.Typing.Speed <= 0 || c.Typing.DescriptionSpeed <= 0 {
		return fmt.Errorf("typing speeds must be positive (speed=%v, description_speed=%v)", c.Typing.Speed, c.Typing.DescriptionSpeed)
	}
	if c.Quiz.MaxKeywords < 0 {
		return fmt.Errorf("quiz.max_keywords must not be negative: %d", c.Quiz.MaxKeywords)
	}
	if c.Quiz.Pause < 0 {
		return fmt.Errorf("quiz.pause must not be negative: %s", c.Quiz.Pause)
	}
	if c.Speech.Enabled && len(c.Speech.Player) == 0 {
		return fmt.Errorf("speech.player is required when speech is enabled")
	}
	return nil
}

// ValidateLanguage checks that code is a well-formed BCP 47 language code.
func ValidateLanguage(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("language code is empty")
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("language code %q: %w", code, err)
	}
	return nil
}
