// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	r := chi.NewRouter()
//	r.Get("/health/live", health.Liveness)
//	r.Get("/health/ready", health.Readiness(log, algolia.Healthcheck(index)))
//	r.Get("/ping", health.NoContent)
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkSearch(ctx context.Context) error {
//		_, err := index.Search("", opt.HitsPerPage(0), ctx)
//		return err
//	}
package health
