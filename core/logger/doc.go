// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/owasp/nest-search/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("nest-search"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("nest-search"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("region", "eu")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so they can be used without nil checks:
//
//	log.Error("Search bootstrap failed",
//		logger.Component("bootstrap"),
//		logger.Provider("algolia"),
//		logger.Missing(keys),
//		logger.Error(err),
//	)
//
// Credentials must never be passed to attribute helpers; log the key name
// (ALGOLIA_SEARCH_API_KEY), not its value.
package logger
