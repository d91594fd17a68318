package meilisearch

const (
	EnvHost   = "MEILISEARCH_HOST"
	EnvAPIKey = "MEILISEARCH_API_KEY"
)

// Config holds Meilisearch client configuration.
type Config struct {
	Host   string `env:"MEILISEARCH_HOST"`
	APIKey string `env:"MEILISEARCH_API_KEY"`
}

// MissingKeys returns the environment keys that are absent or empty.
func (c Config) MissingKeys() []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, EnvHost)
	}
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	return missing
}
