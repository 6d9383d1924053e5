// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server binds its listener before serving, so address errors surface from
// Run immediately and Addr reports the real port when Config.Addr uses ":0".
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received or
// Shutdown is called.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    // errors.Is(err, httpserver.ErrStart)
//	}
package httpserver
