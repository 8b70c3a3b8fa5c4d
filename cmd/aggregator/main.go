package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/eventpulse/stats/internal/aggregator"
	"github.com/eventpulse/stats/internal/config"
	"github.com/eventpulse/stats/internal/consumer"
	"github.com/eventpulse/stats/internal/producer"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load config
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/stats.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	log.Info().
		Strs("kafka_brokers", cfg.Kafka.Brokers).
		Str("actions_topic", cfg.Kafka.Topic(config.TopicUserActions)).
		Str("similarity_topic", cfg.Kafka.Topic(config.TopicEventSimilarity)).
		Msg("Configuration loaded")

	// Similarity writer for the downstream topic
	writer := producer.NewSimilarityWriter(cfg.Kafka)
	defer writer.Close()

	// Create processor and consumer
	processor := aggregator.NewProcessor(aggregator.NewEngine(), writer)
	actionConsumer := consumer.New(
		cfg.Kafka,
		cfg.Kafka.Topic(config.TopicUserActions),
		cfg.Kafka.Group(config.GroupAggregator),
		processor,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return actionConsumer.Run(ctx)
	})

	log.Info().Msg("Aggregator started")

	err = g.Wait()

	log.Info().Msg("Shutting down...")
	if cerr := actionConsumer.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close consumer")
	}

	if err != nil {
		// Fail closed: let the supervisor restart us.
		log.Fatal().Err(err).Msg("Aggregator stopped on error")
	}
	log.Info().Msg("Shutdown complete")
}
