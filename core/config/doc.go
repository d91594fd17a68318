// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls, so configuration is effectively read-only after startup.
//
// The package loads a .env file (if present) on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/owasp/nest-search/core/config"
//
//	type SearchConfig struct {
//		AppID  string `env:"ALGOLIA_APP_ID"`
//		APIKey string `env:"ALGOLIA_SEARCH_API_KEY"`
//	}
//
//	func main() {
//		var cfg SearchConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 SearchConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SearchConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Environment changes made after
// the first load of a type are not observed by later loads of that type.
package config
