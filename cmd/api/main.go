package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"derivatives-case-study/internal/api"
	"derivatives-case-study/internal/config"
	"derivatives-case-study/internal/logging"
	"derivatives-case-study/internal/observability"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "", "optional server config file (YAML)")
	flag.Parse()

	cfg, err := config.LoadServer(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}

	if info, err := os.Stat(cfg.ContractDir); err == nil && info.IsDir() {
		logger.Info("contract presets found", "dir", cfg.ContractDir)
	} else {
		logger.Warn("contract preset directory not found", "dir", cfg.ContractDir, "error", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.Options{
		ContractDir: cfg.ContractDir,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
		Metrics:     observability.New(true),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting API server", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
