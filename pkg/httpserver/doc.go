// Package httpserver runs an http.Handler with read/write timeouts and a
// bounded graceful shutdown when the run context is cancelled.
//
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//	    return err
//	}
//
// Failures are wrapped with ErrStart or ErrShutdown.
package httpserver
