package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file and applies defaults and
// environment overrides. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults + env only
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			// Expand environment variables in the YAML content
			expandedData := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "public"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}

	if cfg.Neo4j.URI == "" {
		cfg.Neo4j.URI = "bolt://localhost"
	}
	if cfg.Neo4j.Username == "" {
		cfg.Neo4j.Username = "neo4j"
	}
	if cfg.Neo4j.Password == "" {
		cfg.Neo4j.Password = "12345678"
	}

	if cfg.Redis.CacheTTL == 0 {
		cfg.Redis.CacheTTL = 30 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Health.Interval == 0 {
		cfg.Health.Interval = 30 * time.Second
	}
}

// applyEnv lets the environment override the file.
func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}

	overrides := map[string]*string{
		"NEO4J_URI":      &cfg.Neo4j.URI,
		"NEO4J_USER":     &cfg.Neo4j.Username,
		"NEO4J_PASSWORD": &cfg.Neo4j.Password,
		"NEO4J_DATABASE": &cfg.Neo4j.Database,
		"REDIS_URL":      &cfg.Redis.URL,
		"LOG_LEVEL":      &cfg.Logging.Level,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("UNIFORM_INTEGER_CONVERSION"); v != "" {
		uniform, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid UNIFORM_INTEGER_CONVERSION %q: %w", v, err)
		}
		cfg.Normalizer.UniformIntegers = uniform
	}

	return nil
}
