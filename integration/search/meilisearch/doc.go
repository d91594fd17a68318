// Package meilisearch constructs Meilisearch clients for deployments that run
// a self-hosted Meilisearch instance.
//
// New validates that both the host and API key are present and builds the
// client locally; Healthcheck calls the /health endpoint and requires the
// instance to report "available".
//
//	client, err := meilisearch.New(meilisearch.Config{
//		Host:   "http://localhost:7700",
//		APIKey: "masterKey",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := client.Index("projects").Search("owasp", &meili.SearchRequest{})
package meilisearch
