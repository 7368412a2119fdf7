package cmd

import (
	"context"
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/moviequiz/cmd/lookup"
	"github.com/lepinkainen/moviequiz/cmd/quiz"
	"github.com/lepinkainen/moviequiz/cmd/record"
	"github.com/lepinkainen/moviequiz/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCmdState(t *testing.T) {
	origPlay, origLookup, origRecord := playQuiz, runLookup, runRecord

	t.Cleanup(func() {
		playQuiz, runLookup, runRecord = origPlay, origLookup, origRecord
		viper.Reset()
	})

	viper.Reset()
	config.SetDefaults()
	viper.Set("speech.enabled", false)
	t.Setenv("X_RAPID_API_KEY", "")
	t.Setenv("IMDB_API_KEY", "")
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"moviequiz"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	opts := append(kongOptions(context.Background()), kong.Exit(func(code int) {
		t.Fatalf("unexpected Kong exit %d", code)
	}))
	ctx := kong.Parse(cli, opts...)

	return cli, ctx
}

func TestQuizIsDefaultCommand(t *testing.T) {
	resetCmdState(t)

	var played config.Config
	playQuiz = func(_ context.Context, cfg config.Config, _ quiz.Options) error {
		played = cfg
		return nil
	}

	_, ctx := parseCLI(t)
	assert.Equal(t, "quiz", ctx.Command())
	require.NoError(t, ctx.Run())
	assert.Equal(t, config.English, played.Language)
	assert.False(t, played.MDBList.Enabled)
}

func TestQuizFlagsOverrideConfig(t *testing.T) {
	resetCmdState(t)
	t.Setenv("X_RAPID_API_KEY", "secret")
	require.NoError(t, viper.BindEnv("mdblist.api_key", "X_RAPID_API_KEY"))

	var played config.Config
	playQuiz = func(_ context.Context, cfg config.Config, _ quiz.Options) error {
		played = cfg
		return nil
	}

	cli, ctx := parseCLI(t, "quiz", "-l", "de", "--live", "--seed", "42")
	assert.Equal(t, "de", cli.Quiz.Language)
	require.NoError(t, ctx.Run())

	assert.Equal(t, "de", played.Language)
	assert.True(t, played.MDBList.Enabled)
	assert.Equal(t, "secret", played.MDBList.APIKey)
	assert.Equal(t, uint64(42), played.Quiz.Seed)
}

func TestQuizLiveRequiresAPIKey(t *testing.T) {
	resetCmdState(t)
	playQuiz = func(context.Context, config.Config, quiz.Options) error {
		t.Fatal("quiz must not start without an API key")
		return nil
	}

	_, ctx := parseCLI(t, "quiz", "--live")
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X_RAPID_API_KEY")
}

func TestQuizInvalidLanguage(t *testing.T) {
	resetCmdState(t)

	_, ctx := parseCLI(t, "quiz", "-l", "not a language")
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language")
}

func TestLookupCommandParsing(t *testing.T) {
	resetCmdState(t)
	viper.Set("imdbapi.api_key", "k_test")

	var got lookup.Params
	runLookup = func(_ context.Context, _ lookup.Client, p lookup.Params) error {
		got = p
		return nil
	}

	cli, ctx := parseCLI(t, "lookup", "The Matrix", "-i", "--select")
	assert.Equal(t, "The Matrix", cli.Lookup.Title)
	require.NoError(t, ctx.Run())

	assert.Equal(t, lookup.Params{Query: "The Matrix", IDOnly: true, Interactive: true}, got)
}

func TestLookupRequiresAPIKey(t *testing.T) {
	resetCmdState(t)

	_, ctx := parseCLI(t, "lookup", "Jaws")
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMDB_API_KEY")
}

func TestRecordCommand(t *testing.T) {
	resetCmdState(t)
	viper.Set("mdblist.api_key", "secret")
	viper.Set("responses.dir", t.TempDir())

	var got record.Params
	runRecord = func(_ context.Context, p record.Params) (record.Summary, error) {
		got = p
		return record.Summary{}, nil
	}

	_, ctx := parseCLI(t, "record")
	require.NoError(t, ctx.Run())

	require.NotNil(t, got.Catalog)
	assert.Positive(t, got.Catalog.Len())
	assert.Equal(t, viper.GetString("responses.dir"), got.Fixtures.Dir)
	assert.NotNil(t, got.Limiter)
}

func TestRecordRequiresAPIKey(t *testing.T) {
	resetCmdState(t)

	_, ctx := parseCLI(t, "record")
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MDBList API key is required")
}

func TestCacheInvalidateParsing(t *testing.T) {
	resetCmdState(t)

	cli, ctx := parseCLI(t, "cache", "invalidate", "translation")
	assert.Equal(t, "cache invalidate <source>", ctx.Command())
	assert.Equal(t, "translation", cli.Cache.Invalidate.Source)
}

func TestCachePruneParsing(t *testing.T) {
	resetCmdState(t)

	_, ctx := parseCLI(t, "cache", "prune")
	assert.Equal(t, "cache prune", ctx.Command())
}

func TestCLIDefaultFlags(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "quiz")

	assert.Equal(t, "./cache.db", cli.CacheDBFile, "CacheDBFile should default to ./cache.db")
	assert.Equal(t, "720h", cli.CacheTTL, "CacheTTL should default to 720h")
	assert.False(t, cli.Verbose)
}

func TestCLIFlagsOverrideDefaults(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "--cache-db-file", "/custom/cache.db", "--cache-ttl", "24h", "-v", "quiz")

	assert.Equal(t, "/custom/cache.db", cli.CacheDBFile)
	assert.Equal(t, "24h", cli.CacheTTL)
	assert.True(t, cli.Verbose)
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)

	updateGlobalConfig(&CLI{CacheDBFile: "/tmp/cache.db", CacheTTL: "12h"})

	assert.Equal(t, "/tmp/cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "12h", viper.GetString("cache.ttl"))
}

func TestEnvironmentVariableBinding(t *testing.T) {
	resetCmdState(t)

	t.Setenv("X_RAPID_API_KEY", "rapid-key")
	t.Setenv("IMDB_API_KEY", "imdb-key")

	viper.AutomaticEnv()
	require.NoError(t, viper.BindEnv("mdblist.api_key", "X_RAPID_API_KEY"))
	require.NoError(t, viper.BindEnv("imdbapi.api_key", "IMDB_API_KEY"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "rapid-key", cfg.MDBList.APIKey)
	assert.Equal(t, "imdb-key", cfg.IMDbAPI.APIKey)
}

func TestInitLogging(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		require.NotPanics(t, func() {
			initLogging(verbose)
		})
	}
}
