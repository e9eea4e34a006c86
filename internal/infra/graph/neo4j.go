// Package graph runs the read queries against the Neo4j wallet graph.
package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
)

// Config holds Neo4j connection configuration.
type Config struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"` // empty = server default
	MaxConns int    `yaml:"max_conns"`
}

// Session is the part of a Neo4j session the gateway uses.
type Session interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
	Close(ctx context.Context) error
}

// SessionFactory opens one session per query.
type SessionFactory interface {
	NewSession(ctx context.Context) Session
}

// Driver wraps the process-wide Neo4j driver. It is created once at
// startup and closed once at shutdown.
type Driver struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewDriver creates the driver. No connection is opened until the first
// session runs a query.
func NewDriver(cfg Config) (*Driver, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *config.Config) {
			if cfg.MaxConns > 0 {
				c.MaxConnectionPoolSize = cfg.MaxConns
			}
			c.ConnectionAcquisitionTimeout = 10 * time.Second
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	return &Driver{driver: driver, database: cfg.Database}, nil
}

// NewSession opens a read-mode session.
func (d *Driver) NewSession(ctx context.Context) Session {
	return &driverSession{
		session: d.driver.NewSession(ctx, neo4j.SessionConfig{
			AccessMode:   neo4j.AccessModeRead,
			DatabaseName: d.database,
		}),
	}
}

// Ping verifies the driver can reach the server.
func (d *Driver) Ping(ctx context.Context) error {
	return d.driver.VerifyConnectivity(ctx)
}

// Close closes the driver and its connection pool.
func (d *Driver) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}

type driverSession struct {
	session neo4j.SessionWithContext
}

func (s *driverSession) Run(
	ctx context.Context,
	cypher string,
	params map[string]any,
) ([]*neo4j.Record, error) {
	result, err := s.session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result.Collect(ctx)
}

func (s *driverSession) Close(ctx context.Context) error {
	return s.session.Close(ctx)
}
