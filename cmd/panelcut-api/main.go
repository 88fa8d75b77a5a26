// PanelCut API server: HTTP frontend for the packing engine.
//
// Build:
//   go build -o panelcut-api ./cmd/panelcut-api
//
// Configuration via environment:
//   PANELCUT_ADDR        listen address (default :8080)
//   PANELCUT_LOG_LEVEL   debug|info|warn|error (default info)
//   PANELCUT_LOG_FORMAT  json|console (default json)

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/piwi3910/panelcut/internal/config"
	"github.com/piwi3910/panelcut/internal/httpapi"
	"github.com/piwi3910/panelcut/internal/logger"
)

func main() {
	cfg := config.Default()
	cfg.LoadFromEnv("PANELCUT")

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "panelcut-api")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	router := httpapi.NewRouter(log)
	router.RegisterRoutes(httpapi.NewHandler(log))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
