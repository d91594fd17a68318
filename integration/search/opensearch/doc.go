// Package opensearch provides OpenSearch client construction and health checking
// for deployments that run search on a self-hosted or managed OpenSearch cluster
// instead of a hosted search service.
//
// The package mirrors the algolia package contract:
//
//   - New: validates configuration and builds a client without network I/O
//   - Connect: New plus an immediate cluster health check (fail fast if unreachable)
//   - Healthcheck: readiness probe calling the cluster Info API
//
// # Configuration
//
//	type Config struct {
//		Addresses    []string `env:"OPENSEARCH_ADDRESSES" envSeparator:","`
//		Username     string   `env:"OPENSEARCH_USERNAME"`
//		Password     string   `env:"OPENSEARCH_PASSWORD"`
//		MaxRetries   int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
//		DisableRetry bool     `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
//	}
//
// Addresses are required. Username and Password are optional but must be set together.
//
// # Usage Example
//
//	client, err := opensearch.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to connect to OpenSearch:", err)
//	}
//
//	req := opensearchapi.SearchRequest{
//		Index: []string{"projects"},
//		Body:  strings.NewReader(`{"query": {"match_all": {}}}`),
//	}
//	resp, err := req.Do(ctx, client)
//
// # Error Handling
//
//   - ErrInvalidConfig: required configuration is missing
//   - ErrConnectionFailed: the client could not be created from the configuration
//   - ErrHealthcheckFailed: the cluster is unreachable or reports an error
package opensearch
