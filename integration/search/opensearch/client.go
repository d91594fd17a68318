package opensearch

import (
	"context"
	"errors"
	"fmt"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
)

// New creates an OpenSearch client without contacting the cluster.
func New(cfg Config) (*opensearchgo.Client, error) {
	if missing := cfg.MissingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrInvalidConfig, missing)
	}

	client, err := opensearchgo.NewClient(opensearchgo.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
	})
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	return client, nil
}

// Connect creates an OpenSearch client and verifies cluster connectivity before
// returning it, so broken clients never reach callers.
func Connect(ctx context.Context, cfg Config) (*opensearchgo.Client, error) {
	client, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if err := Healthcheck(client)(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

// Healthcheck returns a readiness probe calling the cluster Info API.
func Healthcheck(client *opensearchgo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		resp, err := client.Info(client.Info.WithContext(ctx))
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer resp.Body.Close()

		if resp.IsError() {
			return fmt.Errorf("%w: %s", ErrHealthcheckFailed, resp.Status())
		}
		return nil
	}
}
