package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canvas-assistant-backend/internal/config"
	"canvas-assistant-backend/internal/logx"
	"canvas-assistant-backend/internal/server"
)

func main() {
	cfg := config.Load()
	logx.Init(logx.LoggerOpts{Production: cfg.Environment.IsProduction(), Level: cfg.LogLevel})

	s, err := server.NewServer(cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to create server")
	}
	defer s.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.EnhanceTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logx.Info().Str("addr", srv.Addr).Str("env", string(cfg.Environment)).Msg("canvas assistant listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	}
}
