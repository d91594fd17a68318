package app

import (
	"log/slog"

	"github.com/owasp/nest-search/core/config"
	"github.com/owasp/nest-search/core/logger"
	"github.com/owasp/nest-search/core/server"
	"github.com/owasp/nest-search/integration/search/algolia"
	"github.com/owasp/nest-search/integration/search/meilisearch"
	"github.com/owasp/nest-search/integration/search/opensearch"
)

// Provider names the search backend the service talks to.
type Provider string

const (
	ProviderAlgolia     Provider = "algolia"
	ProviderOpenSearch  Provider = "opensearch"
	ProviderMeilisearch Provider = "meilisearch"
)

func (p Provider) valid() bool {
	switch p {
	case ProviderAlgolia, ProviderOpenSearch, ProviderMeilisearch:
		return true
	}
	return false
}

// EnvServerAddr is reported as missing when the server has no listen address.
const EnvServerAddr = "SERVER_ADDR"

// Config is the full service configuration read once at startup.
type Config struct {
	AppName  string   `env:"APP_NAME" envDefault:"nest-search"`
	Env      string   `env:"APP_ENV" envDefault:"development"`
	LogLevel string   `env:"LOG_LEVEL"`
	Provider Provider `env:"SEARCH_PROVIDER" envDefault:"algolia"`

	Algolia     algolia.Config
	OpenSearch  opensearch.Config
	Meilisearch meilisearch.Config
	Server      server.Config
}

// LoadConfig reads Config from the environment (and .env when present).
// The result is cached for the process lifetime.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the logger for c.Env. LogLevel, when set, overrides the
// environment's default level.
func NewLogger(c Config) *slog.Logger {
	opts := []logger.Option{logger.WithEnvironment(c.Env, c.AppName)}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(c.LogLevel)))
	}
	return logger.New(opts...)
}

// missingKeys lists every absent key for the selected provider plus the server address.
func (c Config) missingKeys() []string {
	var missing []string
	switch c.Provider {
	case ProviderAlgolia:
		missing = append(missing, c.Algolia.MissingKeys()...)
	case ProviderOpenSearch:
		missing = append(missing, c.OpenSearch.MissingKeys()...)
	case ProviderMeilisearch:
		missing = append(missing, c.Meilisearch.MissingKeys()...)
	}
	if c.Server.Addr == "" {
		missing = append(missing, EnvServerAddr)
	}
	return missing
}
