package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownGrace bounds how long in-flight requests get once a shutdown
// signal arrives.
const shutdownGrace = 15 * time.Second

// Run maps the relay routes and serves until SIGINT/SIGTERM, then drains
// in-flight requests before returning. ListenAndServe errors surface to
// the caller.
func (srv HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Fatalf(ctx, "Failed to map relay handlers: %v", err)
		return err
	}

	addr := fmt.Sprintf("%s:%d", srv.host, srv.port)
	server := &http.Server{
		Addr:    addr,
		Handler: srv.gin,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Relay ops API listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-signals:
		srv.l.Infof(ctx, "Received %v, draining relay ops API", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Relay ops API shutdown: %v", err)
		return err
	}

	srv.l.Info(ctx, "Relay ops API stopped")
	return nil
}
