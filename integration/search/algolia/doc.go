// Package algolia constructs hosted-search clients for Algolia from two
// credentials: an application identifier and a search API key.
//
// # Key Features
//
//   - New: validates both credentials are present and builds a client handle
//   - MustNew: same as New but panics, for fail-fast startup wiring
//   - Healthcheck: readiness probe issuing an empty query against one index
//
// Construction is purely local: New never touches the network. Requests are
// only issued when the returned client is used, or when the Healthcheck
// function runs.
//
// # Configuration
//
//	type Config struct {
//		AppID            string        `env:"ALGOLIA_APP_ID"`
//		APIKey           string        `env:"ALGOLIA_SEARCH_API_KEY"`
//		Hosts            []string      `env:"ALGOLIA_HOSTS" envSeparator:","`
//		ReadTimeout      time.Duration `env:"ALGOLIA_READ_TIMEOUT" envDefault:"5s"`
//		WriteTimeout     time.Duration `env:"ALGOLIA_WRITE_TIMEOUT" envDefault:"30s"`
//		HealthcheckIndex string        `env:"ALGOLIA_HEALTHCHECK_INDEX"`
//	}
//
// An absent variable and an empty one are treated the same way. No format or
// length validation is applied to either credential.
//
// # Usage Example
//
//	var cfg algolia.Config
//	config.MustLoad(&cfg)
//
//	client, err := algolia.New(cfg)
//	if err != nil {
//		log.Fatal(err) // errors.Is(err, algolia.ErrInvalidConfig)
//	}
//
//	res, err := client.InitIndex("projects").Search("owasp")
//
// # Error Handling
//
//   - ErrInvalidConfig: an application identifier or API key is missing
//   - ErrHealthcheckFailed: the readiness probe could not query the index
package algolia
