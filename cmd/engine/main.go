package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/piyushdaiya/wallet-classifier/internal/config"
	"github.com/piyushdaiya/wallet-classifier/internal/metrics"
	"github.com/piyushdaiya/wallet-classifier/internal/validator"
	"github.com/piyushdaiya/wallet-classifier/internal/watchlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := config.ConfigureLogging(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	logger := log.WithField("component", "engine")
	logger.Info("Starting watchlist engine")

	store, err := watchlist.Open(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("DB error")
	}
	defer store.Close()

	metrics.RegisterMetrics(prometheus.DefaultRegisterer, logger)
	if n, err := store.Count(context.Background()); err == nil {
		metrics.SetWatchlistSize(n)
	}

	classifier := validator.NewClassifier()
	lookup := watchlist.NewCachedStore(store, cfg.CacheTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.SyncDisabled {
		logger.Info("Watchlist sync disabled")
	} else {
		syncer := watchlist.NewSyncer(store, classifier, cfg.FeedURL, cfg.SyncInterval, watchlist.WithOnUpdate(lookup.Flush))
		go syncer.Run(ctx)
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: newRouter(&server{
			classifier: classifier,
			watchlist:  lookup,
			logger:     logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}
