package testutil

import (
	"testing"

	"github.com/spf13/viper"
)

// SetTestConfig resets viper to offline, silent defaults and restores a clean
// viper when the test completes. Cache and fixture paths point into env.
func SetTestConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("language", "en")
	viper.Set("speech.enabled", false)
	viper.Set("mdblist.enabled", false)
	viper.Set("quiz.skippable", true)
	viper.Set("quiz.pause", "0s")
	viper.Set("responses.dir", env.Path("responses"))
	viper.Set("cache.dbfile", env.Path("cache", "test-cache.db"))
	viper.Set("cache.ttl", "24h")
	env.MkdirAll("cache")
}

// SetViperValue sets a viper configuration value for the duration of the test.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
	})
}
