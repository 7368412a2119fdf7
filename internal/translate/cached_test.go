package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/lepinkainen/moviequiz/internal/cache"
	"github.com/lepinkainen/moviequiz/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env)
	require.NoError(t, cache.ResetGlobalCache())
	t.Cleanup(func() { _ = cache.ResetGlobalCache() })
}

func TestCachedEngine_SecondCallHitsCache(t *testing.T) {
	setupCache(t)

	inner := &fakeEngine{}
	engine := NewCachedEngine(inner)

	first, err := engine.Translate(context.Background(), "iceberg", "en", "de")
	require.NoError(t, err)
	second, err := engine.Translate(context.Background(), "iceberg", "en", "de")
	require.NoError(t, err)

	assert.Equal(t, "[de] iceberg", first)
	assert.Equal(t, first, second)
	assert.Len(t, inner.calls, 1)
}

func TestCachedEngine_KeysIncludeTarget(t *testing.T) {
	setupCache(t)

	inner := &fakeEngine{}
	engine := NewCachedEngine(inner)

	de, err := engine.Translate(context.Background(), "iceberg", "en", "de")
	require.NoError(t, err)
	fr, err := engine.Translate(context.Background(), "iceberg", "en", "fr")
	require.NoError(t, err)

	assert.Equal(t, "[de] iceberg", de)
	assert.Equal(t, "[fr] iceberg", fr)
	assert.Len(t, inner.calls, 2)
}

func TestCachedEngine_ErrorsAreNotCached(t *testing.T) {
	setupCache(t)

	failing := true
	inner := &fakeEngine{fn: func(text, target string) (string, error) {
		if failing {
			return "", errors.New("temporarily blocked")
		}
		return "Eisberg", nil
	}}
	engine := NewCachedEngine(inner)

	_, err := engine.Translate(context.Background(), "iceberg", "en", "de")
	require.Error(t, err)

	failing = false
	got, err := engine.Translate(context.Background(), "iceberg", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Eisberg", got)
	assert.Len(t, inner.calls, 2)
}
