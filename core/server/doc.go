// Package server wraps net/http.Server with graceful shutdown for the search
// service's HTTP surface (health probes).
//
// The listener is bound synchronously by Start, so address conflicts surface
// as errors from Start rather than from a background goroutine.
//
// Usage with errgroup:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//	return eg.Wait()
//
// Configuration is read from SERVER_* environment variables:
//
//	SERVER_ADDR              listen address (default ":8080")
//	SERVER_READ_TIMEOUT      default 15s
//	SERVER_WRITE_TIMEOUT     default 15s
//	SERVER_IDLE_TIMEOUT      default 60s
//	SERVER_SHUTDOWN_TIMEOUT  default 30s
//	SERVER_MAX_HEADER_BYTES  default 1048576
package server
