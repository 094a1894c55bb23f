package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/Domenick1991/flightsearch/internal/analytics"
	"github.com/Domenick1991/flightsearch/internal/kafka"
	"github.com/Domenick1991/flightsearch/internal/logger"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		bootLog := logger.New(config.LogConfig{})
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Log)

	if !cfg.Kafka.Enabled() {
		log.Fatal().Msg("kafka.brokers and kafka.queries_topic are required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.QueriesTopic, log)
	defer consumer.Close()

	stats := analytics.NewStats()

	go func() {
		err := consumer.ConsumeEvents(ctx, func(_ context.Context, event kafka.QueryEvent) error {
			stats.Record(event)
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("consumer stopped")
			stop()
		}
	}()

	interval := time.Duration(cfg.Worker.ReportIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	reportTicker := time.NewTicker(interval)
	defer reportTicker.Stop()

	for {
		select {
		case <-reportTicker.C:
			stats.Report(log)
		case <-ctx.Done():
			stats.Report(log)
			log.Info().Msg("worker shutting down")
			return
		}
	}
}
