package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/owasp/nest-search/integration/search/algolia"
	"github.com/owasp/nest-search/integration/search/meilisearch"
	"github.com/owasp/nest-search/integration/search/opensearch"
)

var (
	ErrMissingConfig   = errors.New("required configuration not found")
	ErrUnknownProvider = errors.New("unknown search provider")
)

// ConfigError reports every configuration key that was absent or empty at bootstrap.
// It always matches ErrMissingConfig. It matches the selected provider's
// ErrInvalidConfig only when one of that provider's own keys is missing.
type ConfigError struct {
	Provider Provider
	Missing  []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMissingConfig, e.Provider, strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() []error {
	errs := []error{ErrMissingConfig}
	if e.CredentialsMissing() {
		errs = append(errs, providerConfigError(e.Provider))
	}
	return errs
}

// CredentialsMissing reports whether any missing key belongs to the provider itself.
func (e *ConfigError) CredentialsMissing() bool {
	keys := providerKeys(e.Provider)
	for _, k := range e.Missing {
		if slices.Contains(keys, k) {
			return true
		}
	}
	return false
}

func providerConfigError(p Provider) error {
	switch p {
	case ProviderAlgolia:
		return algolia.ErrInvalidConfig
	case ProviderOpenSearch:
		return opensearch.ErrInvalidConfig
	case ProviderMeilisearch:
		return meilisearch.ErrInvalidConfig
	}
	return nil
}

func providerKeys(p Provider) []string {
	switch p {
	case ProviderAlgolia:
		return []string{algolia.EnvAppID, algolia.EnvAPIKey}
	case ProviderOpenSearch:
		return []string{opensearch.EnvAddresses, opensearch.EnvUsername, opensearch.EnvPassword}
	case ProviderMeilisearch:
		return []string{meilisearch.EnvHost, meilisearch.EnvAPIKey}
	}
	return nil
}
