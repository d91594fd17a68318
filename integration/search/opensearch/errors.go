package opensearch

import "errors"

// Domain-specific OpenSearch errors. Use errors.Is() to check error types.
var (
	ErrInvalidConfig     = errors.New("opensearch configuration is invalid")
	ErrConnectionFailed  = errors.New("opensearch connection failed")
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
