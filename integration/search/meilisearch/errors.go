package meilisearch

import "errors"

// Domain-specific Meilisearch errors. Use errors.Is() to check error types.
var (
	ErrInvalidConfig     = errors.New("meilisearch configuration is invalid")
	ErrHealthcheckFailed = errors.New("meilisearch healthcheck failed")
)
