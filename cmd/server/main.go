package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"frogger/internal/frogger"
	"frogger/internal/platform/config"
	"frogger/internal/platform/logger"
	"frogger/internal/platform/metrics"
	"frogger/internal/records"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, envErr := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Debug("no .env file loaded", "error", envErr)
	}

	recs := records.New()
	lanes := frogger.NewInMemoryLaneRepository()
	svc := frogger.NewService(recs, lanes, cfg.MaxLaneLength)
	met := metrics.New()
	h := frogger.NewHandler(svc, log, met)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() {
			met.SetRecords(svc.RecordCount())
			met.SetLanes(svc.LaneCount())
		}).ServeHTTP(w, r)
	})
	h.Routes(r)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", cfg.Port,
		"max_lane_length", cfg.MaxLaneLength,
		"log_level", cfg.LogLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
