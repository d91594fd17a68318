package algolia

import "errors"

// Domain-specific Algolia errors. Use errors.Is() to check error types.
var (
	// ErrInvalidConfig signals missing credentials. It is a deployment defect, not a transient fault.
	ErrInvalidConfig     = errors.New("algolia keys not found")
	ErrHealthcheckFailed = errors.New("algolia healthcheck failed")
)
