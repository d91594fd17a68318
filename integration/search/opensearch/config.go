package opensearch

// Environment keys checked by MissingKeys.
const (
	EnvAddresses = "OPENSEARCH_ADDRESSES"
	EnvUsername  = "OPENSEARCH_USERNAME"
	EnvPassword  = "OPENSEARCH_PASSWORD"
)

// Config holds OpenSearch client configuration.
type Config struct {
	Addresses    []string `env:"OPENSEARCH_ADDRESSES" envSeparator:","`
	Username     string   `env:"OPENSEARCH_USERNAME"`
	Password     string   `env:"OPENSEARCH_PASSWORD"`
	MaxRetries   int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool     `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
}

// MissingKeys returns the environment keys that must be set for New to succeed.
func (c Config) MissingKeys() []string {
	var missing []string
	if len(c.Addresses) == 0 {
		missing = append(missing, EnvAddresses)
	}
	switch {
	case c.Username != "" && c.Password == "":
		missing = append(missing, EnvPassword)
	case c.Username == "" && c.Password != "":
		missing = append(missing, EnvUsername)
	}
	return missing
}
