package config

import (
	"time"

	"github.com/vietddude/wallet-explorer/internal/core/normalize"
	"github.com/vietddude/wallet-explorer/internal/infra/graph"
	redisclient "github.com/vietddude/wallet-explorer/internal/infra/redis"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server     ServerConfig       `yaml:"server"`
	Neo4j      graph.Config       `yaml:"neo4j"`
	Redis      redisclient.Config `yaml:"redis"`
	Logging    LoggingConfig      `yaml:"logging"`
	Normalizer normalize.Options  `yaml:"normalizer"`
	Health     HealthConfig       `yaml:"health"`
}

// ServerConfig holds HTTP and gRPC server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	GRPCPort        int           `yaml:"grpc_port"` // 0 = gRPC health disabled
	StaticDir       string        `yaml:"static_dir"`
	StrictAddresses bool          `yaml:"strict_addresses"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// HealthConfig holds settings for the background health probe.
type HealthConfig struct {
	Interval time.Duration `yaml:"interval"`
}
