package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Run は srv を起動し、ctx がキャンセルされるまで待ってからグレースフルにシャットダウンします。
// 起動に失敗した場合はそのエラーを返します。
func Run(ctx context.Context, srv *http.Server, logger zerolog.Logger, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", srv.Addr, err)
	}
	return Serve(ctx, srv, ln, logger, shutdownTimeout)
}

// Serve は Run と同じですが、呼び出し側が用意した listener を使います。
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, logger zerolog.Logger, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", ln.Addr().String()).
			Msg("setting up http server")
		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		return err
	}
	logger.Info().Msg("shut down http server")
	return nil
}
