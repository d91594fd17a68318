package app

import (
	"context"
	"fmt"

	meili "github.com/meilisearch/meilisearch-go"
	opensearchgo "github.com/opensearch-project/opensearch-go/v2"

	"github.com/owasp/nest-search/integration/search/algolia"
	"github.com/owasp/nest-search/integration/search/meilisearch"
	"github.com/owasp/nest-search/integration/search/opensearch"
)

// Search is the shared search client handle. Only the client of the selected
// provider is set; the others are nil. It is never mutated after bootstrap.
type Search struct {
	provider    Provider
	algolia     *algolia.Client
	openSearch  *opensearchgo.Client
	meilisearch meili.ServiceManager
	healthcheck func(context.Context) error
}

func newSearch(cfg Config) (*Search, error) {
	s := &Search{provider: cfg.Provider}

	switch cfg.Provider {
	case ProviderAlgolia:
		client, err := algolia.New(cfg.Algolia)
		if err != nil {
			return nil, err
		}
		s.algolia = client
		if cfg.Algolia.HealthcheckIndex != "" {
			s.healthcheck = algolia.Healthcheck(client.InitIndex(cfg.Algolia.HealthcheckIndex))
		}

	case ProviderOpenSearch:
		client, err := opensearch.New(cfg.OpenSearch)
		if err != nil {
			return nil, err
		}
		s.openSearch = client
		s.healthcheck = opensearch.Healthcheck(client)

	case ProviderMeilisearch:
		client, err := meilisearch.New(cfg.Meilisearch)
		if err != nil {
			return nil, err
		}
		s.meilisearch = client
		s.healthcheck = meilisearch.Healthcheck(client)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	return s, nil
}

// Provider returns the selected backend.
func (s *Search) Provider() Provider { return s.provider }

// Algolia returns the Algolia client, or nil for other providers.
func (s *Search) Algolia() *algolia.Client { return s.algolia }

// OpenSearch returns the OpenSearch client, or nil for other providers.
func (s *Search) OpenSearch() *opensearchgo.Client { return s.openSearch }

// Meilisearch returns the Meilisearch client, or nil for other providers.
func (s *Search) Meilisearch() meili.ServiceManager { return s.meilisearch }

// Healthcheck returns the readiness probe for the selected backend.
// Nil when the backend has no probe configured (Algolia without ALGOLIA_HEALTHCHECK_INDEX).
func (s *Search) Healthcheck() func(context.Context) error { return s.healthcheck }
