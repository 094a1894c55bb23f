package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/Domenick1991/flightsearch/internal/bootstrap"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightService, err := bootstrap.BuildFlightService(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build flight catalog")
	}

	opts := []bootstrap.Option{bootstrap.WithLogger(log)}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.QueriesTopic, log)
		defer producer.Close()
		opts = append(opts, bootstrap.WithPublisher(producer))
	}

	if err := bootstrap.Run(ctx, cfg, flightService, opts...); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
