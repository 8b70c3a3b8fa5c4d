package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "stats.user-actions.v1", cfg.Kafka.Topic(TopicUserActions))
	require.Equal(t, "stats.event-similarity.v1", cfg.Kafka.Topic(TopicEventSimilarity))
	require.Equal(t, "stats-aggregator", cfg.Kafka.Group(GroupAggregator))
	require.Equal(t, "stats-analyzer-actions", cfg.Kafka.Group(GroupAnalyzerActions))
	require.Equal(t, "stats-analyzer-similarity", cfg.Kafka.Group(GroupAnalyzerSimilarity))
	require.Equal(t, 9090, cfg.Server.GRPCPort)
	require.Equal(t, 8080, cfg.Server.HTTPPort)
	require.Equal(t, time.Minute, cfg.Cache.TTL)
	require.Equal(t, 10, cfg.ClickHouse.MaxOpenConns)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_PG_PASSWORD", "s3cret")

	cfg, err := Load(writeConfig(t, `
postgres:
  dsn: postgres://stats:${TEST_PG_PASSWORD}@db:5432/stats
`))
	require.NoError(t, err)
	require.Equal(t, "postgres://stats:s3cret@db:5432/stats", cfg.Postgres.DSN)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
kafka:
  brokers: ["kafka-1:9092", "kafka-2:9092"]
  topics:
    user_actions: custom.actions
server:
  grpc_port: 7070
cache:
  ttl: 30s
`))
	require.NoError(t, err)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "custom.actions", cfg.Kafka.Topic(TopicUserActions))
	// Unset names still get defaults.
	require.Equal(t, "stats.event-similarity.v1", cfg.Kafka.Topic(TopicEventSimilarity))
	require.Equal(t, 7070, cfg.Server.GRPCPort)
	require.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
