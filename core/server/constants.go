package server

import "time"

// Defaults sized for a process that only answers health probes. The write
// timeout must outlast a readiness check against the search provider.
const (
	DefaultAddr = ":8080"

	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	// Probe requests carry a handful of headers.
	DefaultMaxHeaderBytes = 64 << 10
)
