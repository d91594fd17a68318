// Package app is the explicit bootstrap phase of the search service.
//
// Bootstrap validates every required configuration value up front and either
// returns a ready *App or a *ConfigError listing all missing keys. The search
// client is built exactly once per App and handed to consumers through
// App.Search, instead of living in a package-level variable initialized at
// import time.
//
//	cfg, err := app.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	a, err := app.Bootstrap(cfg, app.WithLogger(log))
//	var cfgErr *app.ConfigError
//	if errors.As(err, &cfgErr) {
//		log.Error("Search credentials not found", logger.Missing(cfgErr.Missing))
//		os.Exit(1)
//	}
//
//	index := a.Search().Algolia().InitIndex("projects")
package app
