package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/owasp/nest-search/core/health"
	"github.com/owasp/nest-search/core/logger"
	"github.com/owasp/nest-search/core/server"
)

// App holds the dependencies built at bootstrap.
type App struct {
	config Config
	logger *slog.Logger
	search *Search
	server *server.Server
}

// Option customizes Bootstrap.
type Option func(*App) error

// WithLogger replaces the logger derived from Config.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithServer replaces the server built from Config.Server.
func WithServer(srv *server.Server) Option {
	return func(a *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		a.server = srv
		return nil
	}
}

// Bootstrap validates cfg and builds the App. All missing keys are reported
// together in a *ConfigError; no client is built unless every key is present.
// No network request is made.
func Bootstrap(cfg Config, opts ...Option) (*App, error) {
	a := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if !cfg.Provider.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	missing := cfg.missingKeys()
	if a.server != nil {
		missing = withoutKey(missing, EnvServerAddr)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Provider: cfg.Provider, Missing: missing}
	}

	if a.logger == nil {
		a.logger = NewLogger(cfg)
	}

	search, err := newSearch(cfg)
	if err != nil {
		return nil, err
	}
	a.search = search

	if a.server == nil {
		srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(a.logger))
		if err != nil {
			return nil, err
		}
		a.server = srv
	}

	attrs := []any{
		logger.Component("bootstrap"),
		logger.Provider(string(cfg.Provider)),
	}
	if search.Algolia() != nil {
		attrs = append(attrs, logger.AppID(search.Algolia().AppID()), logger.Index(cfg.Algolia.HealthcheckIndex))
	}
	a.logger.Info("Search client ready", attrs...)
	if search.Healthcheck() == nil {
		a.logger.Warn("Search readiness probe disabled", logger.Component("bootstrap"), logger.Provider(string(cfg.Provider)))
	}

	return a, nil
}

// Search returns the shared search handle built at bootstrap.
func (a *App) Search() *Search { return a.search }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Config returns the configuration the App was built from.
func (a *App) Config() Config { return a.config }

// Handler returns the HTTP routes served by Run.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness(a.logger, a.search.Healthcheck()))
	r.Get("/ping", health.NoContent)

	return r
}

// Run serves Handler until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(a.server.Run(ctx, a.Handler()))
	return eg.Wait()
}

func withoutKey(keys []string, key string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
