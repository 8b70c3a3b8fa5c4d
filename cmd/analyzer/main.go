package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/eventpulse/stats/internal/analyzer"
	"github.com/eventpulse/stats/internal/config"
	"github.com/eventpulse/stats/internal/consumer"
	"github.com/eventpulse/stats/internal/handler"
	"github.com/eventpulse/stats/internal/server"
	"github.com/eventpulse/stats/internal/storage"
	pb "github.com/eventpulse/stats/proto/statspb"
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
		Str("clickhouse_addr", cfg.ClickHouse.Addr).
		Str("redis_addr", cfg.Redis.Addr).
		Int("grpc_port", cfg.Server.GRPCPort).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Postgres
	actionStore, err := storage.NewUserActionStore(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Postgres")
	}
	defer actionStore.Close()
	log.Info().Msg("Connected to Postgres")

	// Initialize ClickHouse
	simStore, err := storage.NewSimilarityStore(ctx, cfg.ClickHouse)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to ClickHouse")
	}
	defer simStore.Close()
	log.Info().Msg("Connected to ClickHouse")

	// Initialize Redis (optional popularity cache)
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, popularity cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
			log.Info().Msg("Connected to Redis")
		}
	}

	// Ingestion loops: same action topic as the aggregator but a separate
	// consumer group, plus the similarity topic.
	actionConsumer := consumer.New(
		cfg.Kafka,
		cfg.Kafka.Topic(config.TopicUserActions),
		cfg.Kafka.Group(config.GroupAnalyzerActions),
		analyzer.NewArchiver(actionStore),
	)
	similarityConsumer := consumer.New(
		cfg.Kafka,
		cfg.Kafka.Topic(config.TopicEventSimilarity),
		cfg.Kafka.Group(config.GroupAnalyzerSimilarity),
		analyzer.NewSimilaritySink(simStore),
	)

	// Query side
	recommender := analyzer.NewRecommender(actionStore, simStore, rdb, cfg.Cache.TTL)
	grpcServer := grpc.NewServer()
	pb.RegisterRecommendationsServer(grpcServer, server.NewRecommendationServer(recommender))

	// Health surface
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(actionStore, simStore))
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: r,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return actionConsumer.Run(ctx)
	})
	g.Go(func() error {
		return similarityConsumer.Run(ctx)
	})
	g.Go(func() error {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
		if err != nil {
			return fmt.Errorf("listen grpc: %w", err)
		}
		log.Info().Int("port", cfg.Server.GRPCPort).Msg("Starting gRPC server")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info().Int("port", cfg.Server.HTTPPort).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	log.Info().Msg("Analyzer started")

	err = g.Wait()

	log.Info().Msg("Shutting down...")
	if cerr := actionConsumer.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close action consumer")
	}
	if cerr := similarityConsumer.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close similarity consumer")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Analyzer stopped on error")
	}
	log.Info().Msg("Shutdown complete")
}
