package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/owasp/nest-search/app"
	"github.com/owasp/nest-search/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.New().Error("Failed to load configuration", logger.Component("config"), logger.Error(err))
		os.Exit(1)
	}

	log := app.NewLogger(cfg)

	// Fail fast: nothing downstream of search can run without a client.
	a, err := app.Bootstrap(cfg, app.WithLogger(log))
	if err != nil {
		var cfgErr *app.ConfigError
		switch {
		case errors.As(err, &cfgErr) && cfgErr.CredentialsMissing():
			log.Error("Search credentials not found",
				logger.Component("bootstrap"),
				logger.Provider(string(cfgErr.Provider)),
				logger.Missing(cfgErr.Missing),
			)
		case cfgErr != nil:
			log.Error("Required configuration not found",
				logger.Component("bootstrap"),
				logger.Missing(cfgErr.Missing),
			)
		default:
			log.Error("Failed to bootstrap application", logger.Component("bootstrap"), logger.Error(err))
		}
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
