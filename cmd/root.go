package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/moviequiz/cmd/lookup"
	"github.com/lepinkainen/moviequiz/cmd/quiz"
	"github.com/lepinkainen/moviequiz/cmd/record"
	"github.com/lepinkainen/moviequiz/internal/cache"
	"github.com/lepinkainen/moviequiz/internal/catalog"
	"github.com/lepinkainen/moviequiz/internal/config"
	"github.com/lepinkainen/moviequiz/internal/errors"
	"github.com/lepinkainen/moviequiz/internal/imdbapi"
	"github.com/lepinkainen/moviequiz/internal/mdblist"
	"github.com/lepinkainen/moviequiz/internal/ratelimit"
)

var (
	playQuiz   = quiz.Play
	runLookup  = lookup.Run
	runRecord  = record.Run
	loadConfig = config.Load
)

// CLI represents the complete command structure for the moviequiz application
type CLI struct {
	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 720h for 30 days)" default:"720h"`

	Verbose bool `short:"v" help:"Enable debug logging"`

	Quiz   QuizCmd   `cmd:"" default:"1" help:"Play one round of the movie quiz (default)"`
	Lookup LookupCmd `cmd:"" help:"Find a title's IMDb ID and check Netflix and Prime Video availability"`
	Record RecordCmd `cmd:"" help:"Record MDBList responses for every catalog movie as fixtures"`
	Cache  CacheCmd  `cmd:"" help:"Manage the response cache"`
}

// QuizCmd represents the quiz command
type QuizCmd struct {
	Language string `short:"l" help:"Display language (overrides the language config key)"`
	Live     bool   `help:"Fetch from MDBList instead of recorded fixtures"`
	Seed     uint64 `help:"Seed for a replayable run (0 picks a random seed)"`
}

// LookupCmd represents the lookup command
type LookupCmd struct {
	Title  string `arg:"" help:"Title to search for"`
	ID     bool   `short:"i" help:"Print only the resolved IMDb ID"`
	Select bool   `short:"s" help:"Choose among the search results interactively"`
}

// RecordCmd represents the record command
type RecordCmd struct{}

// CacheCmd represents the cache command and its subcommands
type CacheCmd struct {
	Invalidate cache.InvalidateCacheCmd `cmd:"" help:"Delete all entries of one cache source"`
	Prune      cache.PruneCacheCmd      `cmd:"" help:"Delete entries older than the cache TTL"`
}

func kongOptions(ctx context.Context) []kong.Option {
	return []kong.Option{
		kong.Name("moviequiz"),
		kong.Description("Guess the movie from its keywords, description and title."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	}
}

// Execute runs the Kong-based CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli, kongOptions(ctx)...)

	initLogging(cli.Verbose)
	initConfig()
	updateGlobalConfig(&cli)

	err := kctx.Run()
	if errors.IsStopProcessingError(err) {
		slog.Info("Stopped", "reason", err)
		return
	}
	if err != nil {
		slog.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	// Cache defaults
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "720h") // 30 days

	// Enable environment variable support
	viper.AutomaticEnv()
	// Bind specific environment variables to config keys
	if err := viper.BindEnv("mdblist.api_key", "X_RAPID_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("imdbapi.api_key", "IMDB_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}
}

func updateGlobalConfig(cli *CLI) {
	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)
}

// Run methods for each command

func (q *QuizCmd) Run(ctx context.Context) error {
	if q.Language != "" {
		viper.Set("language", q.Language)
	}
	if q.Live {
		viper.Set("mdblist.enabled", true)
	}
	if q.Seed != 0 {
		viper.Set("quiz.seed", q.Seed)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.MDBList.Enabled && cfg.MDBList.APIKey == "" {
		return fmt.Errorf("MDBList API key is required for live access (set X_RAPID_API_KEY or mdblist.api_key in config)")
	}

	return playQuiz(ctx, cfg, quiz.Options{})
}

func (l *LookupCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.IMDbAPI.APIKey == "" {
		return fmt.Errorf("imdb-api key is required (set IMDB_API_KEY or imdbapi.api_key in config)")
	}

	client := imdbapi.NewClient(cfg.IMDbAPI.APIKey, imdbapi.WithBaseURL(cfg.IMDbAPI.URL))
	return runLookup(ctx, client, lookup.Params{
		Query:       l.Title,
		IDOnly:      l.ID,
		Interactive: l.Select,
	})
}

func (r *RecordCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.MDBList.APIKey == "" {
		return fmt.Errorf("MDBList API key is required (set X_RAPID_API_KEY or mdblist.api_key in config)")
	}

	data, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}

	client := mdblist.NewClient(cfg.MDBList.APIKey,
		mdblist.WithBaseURL(cfg.MDBList.URL),
		mdblist.WithHost(cfg.MDBList.Host),
	)
	_, err = runRecord(ctx, record.Params{
		Catalog:  data.Catalog,
		Client:   client,
		Fixtures: mdblist.FixtureStore{Dir: cfg.ResponsesDir},
		Limiter:  ratelimit.Every("mdblist", record.DefaultInterval),
	})
	return err
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Quiz output owns stdout, diagnostics go to stderr
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
