package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owasp/nest-search/core/config"
)

func TestLoad(t *testing.T) {
	type searchConfig struct {
		AppID   string        `env:"NEST_TEST_APP_ID"`
		APIKey  string        `env:"NEST_TEST_API_KEY"`
		Timeout time.Duration `env:"NEST_TEST_TIMEOUT" envDefault:"5s"`
		Hosts   []string      `env:"NEST_TEST_HOSTS" envSeparator:","`
	}

	t.Setenv("NEST_TEST_APP_ID", "ABC123")
	t.Setenv("NEST_TEST_API_KEY", "secret-key")
	t.Setenv("NEST_TEST_HOSTS", "a.example.com,b.example.com")

	var cfg searchConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "ABC123", cfg.AppID)
	assert.Equal(t, "secret-key", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.Hosts)
}

func TestLoad_AbsentValuesAreEmpty(t *testing.T) {
	type optionalConfig struct {
		AppID string `env:"NEST_TEST_ABSENT_APP_ID"`
	}

	var cfg optionalConfig
	require.NoError(t, config.Load(&cfg))
	assert.Empty(t, cfg.AppID)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"NEST_TEST_CACHED"`
	}

	t.Setenv("NEST_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("NEST_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "later loads must return the cached value")
}

func TestLoad_RequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Value string `env:"NEST_TEST_REQUIRED_MISSING,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), "NEST_TEST_REQUIRED_MISSING")
}

func TestLoad_NilDestination(t *testing.T) {
	t.Parallel()

	type nilConfig struct{}

	var cfg *nilConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}

func TestMustLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		type mustConfig struct {
			Port int `env:"NEST_TEST_PORT" envDefault:"8080"`
		}

		var cfg mustConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("invalid panics", func(t *testing.T) {
		type brokenConfig struct {
			Port int `env:"NEST_TEST_BROKEN_PORT"`
		}

		t.Setenv("NEST_TEST_BROKEN_PORT", "not-a-number")

		var cfg brokenConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
