// httpserver は net/http だけで index.html を返すサーバーです (既定ポート 3000)。
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-learning-log/internal/config"
	"go-learning-log/internal/logger"
	"go-learning-log/internal/routes"
	"go-learning-log/internal/server"
	"go-learning-log/internal/static"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Must(cfg.Env, os.Stdout)

	path, err := static.ResolvePath(cfg.HTTP.PlainStaticDir, cfg.HTTP.IndexFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve html path")
	}

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.PlainPort),
		Handler: routes.NewMux(static.NewResponder(path, log), log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("html", path).
		Msg(fmt.Sprintf("Server is running on PORT:%s", cfg.HTTP.PlainPort))
	if err := server.Run(ctx, srv, log, cfg.HTTP.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
