package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Kafka      KafkaConfig      `yaml:"kafka"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
	Redis      RedisConfig      `yaml:"redis"`
	Server     ServerConfig     `yaml:"server"`
	Cache      CacheConfig      `yaml:"cache"`
}

type KafkaConfig struct {
	Brokers []string          `yaml:"brokers"`
	Topics  map[string]string `yaml:"topics"`
	Groups  map[string]string `yaml:"groups"`
}

// Topic returns the configured topic by logical name.
func (c KafkaConfig) Topic(name string) string {
	return c.Topics[name]
}

// Group returns the configured consumer group by logical name.
func (c KafkaConfig) Group(name string) string {
	return c.Groups[name]
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type ClickHouseConfig struct {
	Addr         string `yaml:"addr"`
	Database     string `yaml:"database"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ServerConfig struct {
	GRPCPort int `yaml:"grpc_port"`
	HTTPPort int `yaml:"http_port"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// Logical topic and consumer group names shared by the binaries.
const (
	TopicUserActions     = "user_actions"
	TopicEventSimilarity = "event_similarity"

	GroupAggregator         = "aggregator"
	GroupAnalyzerActions    = "analyzer_actions"
	GroupAnalyzerSimilarity = "analyzer_similarity"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{"localhost:9092"}
	}
	if cfg.Kafka.Topics == nil {
		cfg.Kafka.Topics = map[string]string{}
	}
	if cfg.Kafka.Topics[TopicUserActions] == "" {
		cfg.Kafka.Topics[TopicUserActions] = "stats.user-actions.v1"
	}
	if cfg.Kafka.Topics[TopicEventSimilarity] == "" {
		cfg.Kafka.Topics[TopicEventSimilarity] = "stats.event-similarity.v1"
	}
	if cfg.Kafka.Groups == nil {
		cfg.Kafka.Groups = map[string]string{}
	}
	if cfg.Kafka.Groups[GroupAggregator] == "" {
		cfg.Kafka.Groups[GroupAggregator] = "stats-aggregator"
	}
	if cfg.Kafka.Groups[GroupAnalyzerActions] == "" {
		cfg.Kafka.Groups[GroupAnalyzerActions] = "stats-analyzer-actions"
	}
	if cfg.Kafka.Groups[GroupAnalyzerSimilarity] == "" {
		cfg.Kafka.Groups[GroupAnalyzerSimilarity] = "stats-analyzer-similarity"
	}
	if cfg.ClickHouse.MaxOpenConns == 0 {
		cfg.ClickHouse.MaxOpenConns = 10
	}
	if cfg.ClickHouse.MaxIdleConns == 0 {
		cfg.ClickHouse.MaxIdleConns = 5
	}
	if cfg.Server.GRPCPort == 0 {
		cfg.Server.GRPCPort = 9090
	}
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = time.Minute
	}

	return &cfg, nil
}
