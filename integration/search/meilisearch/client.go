package meilisearch

import (
	"context"
	"errors"
	"fmt"

	meili "github.com/meilisearch/meilisearch-go"
)

const statusAvailable = "available"

// New creates a Meilisearch client. No request is issued.
func New(cfg Config) (meili.ServiceManager, error) {
	if missing := cfg.MissingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrInvalidConfig, missing)
	}

	return meili.New(cfg.Host, meili.WithAPIKey(cfg.APIKey)), nil
}

// MustNew creates a Meilisearch client that panics on invalid config.
func MustNew(cfg Config) meili.ServiceManager {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Healthcheck returns a readiness probe calling the /health endpoint.
func Healthcheck(client meili.ServiceManager) func(context.Context) error {
	return func(ctx context.Context) error {
		h, err := client.HealthWithContext(ctx)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if h == nil || h.Status != statusAvailable {
			status := ""
			if h != nil {
				status = h.Status
			}
			return fmt.Errorf("%w: status %q", ErrHealthcheckFailed, status)
		}
		return nil
	}
}
