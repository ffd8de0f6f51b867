package server

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Serve runs srv until ctx is done, then shuts it down gracefully within
// timeout. A listener failure is returned instead of killing the process,
// so the caller's deferred cleanup still runs.
func Serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
