package algolia

import "time"

// Environment keys holding the credentials.
const (
	EnvAppID  = "ALGOLIA_APP_ID"
	EnvAPIKey = "ALGOLIA_SEARCH_API_KEY"
)

// Config holds Algolia client configuration.
// Credentials carry no required tag so absent keys can be reported together by the caller.
type Config struct {
	AppID  string `env:"ALGOLIA_APP_ID"`
	APIKey string `env:"ALGOLIA_SEARCH_API_KEY"`

	// Hosts overrides the default DSN hosts derived from AppID.
	Hosts        []string      `env:"ALGOLIA_HOSTS" envSeparator:","`
	ReadTimeout  time.Duration `env:"ALGOLIA_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"ALGOLIA_WRITE_TIMEOUT" envDefault:"30s"`

	// HealthcheckIndex enables the readiness probe when set.
	HealthcheckIndex string `env:"ALGOLIA_HEALTHCHECK_INDEX"`
}

// MissingKeys returns the environment keys of credentials that are absent or empty.
func (c Config) MissingKeys() []string {
	var missing []string
	if c.AppID == "" {
		missing = append(missing, EnvAppID)
	}
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	return missing
}
