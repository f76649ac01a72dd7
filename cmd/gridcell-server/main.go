package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactsheet/gridcell"
	"github.com/contactsheet/gridcell/internal/config"
	"github.com/contactsheet/gridcell/internal/metrics"
	"github.com/contactsheet/gridcell/internal/server"
	"github.com/contactsheet/gridcell/pkg/logger"
)

func main() {
	var addr, configPath string
	flag.StringVar(&addr, "addr", "", "listen address (overrides config)")
	flag.StringVar(&configPath, "config", "", "path to JSON config file")
	flag.Parse()

	logger.Init(os.Stdout, slog.LevelInfo)
	metrics.Init()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			slog.Error("failed to load config", "path", configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	extractor := gridcell.NewWithConfig(cfg.Grid(), cfg.Cropper())
	handler := server.NewHandler(extractor)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewRouter(handler),
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
