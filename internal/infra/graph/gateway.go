package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/vietddude/wallet-explorer/internal/metrics"
)

// ErrQuery wraps every connectivity or execution failure.
var ErrQuery = errors.New("graph query failed")

// Gateway runs exactly one parameterized read query per call, each in its
// own session.
type Gateway struct {
	sessions SessionFactory
	log      *slog.Logger
}

// NewGateway creates a gateway over the given session factory.
func NewGateway(sessions SessionFactory) *Gateway {
	return &Gateway{
		sessions: sessions,
		log:      slog.Default().With("component", "graph"),
	}
}

// Wallets returns the wallet records whose addressId matches address.
func (g *Gateway) Wallets(ctx context.Context, address string) ([]*neo4j.Record, error) {
	return g.run(ctx, "wallet", walletQuery, address)
}

// Transactions returns the TRANSACTION edges touching address, in either
// direction.
func (g *Gateway) Transactions(ctx context.Context, address string) ([]*neo4j.Record, error) {
	return g.run(ctx, "transactions", transactionsQuery, address)
}

func (g *Gateway) run(
	ctx context.Context,
	name, cypher, address string,
) (records []*neo4j.Record, err error) {
	start := time.Now()
	session := g.sessions.NewSession(ctx)
	defer func() {
		// Close must run even when ctx was cancelled mid-query.
		if cerr := session.Close(context.WithoutCancel(ctx)); cerr != nil {
			g.log.Warn("Failed to close session", "query", name, "error", cerr)
		}
		metrics.GraphQueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.GraphQueryErrors.WithLabelValues(name).Inc()
		}
	}()

	records, err = session.Run(ctx, cypher, map[string]any{"address": address})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQuery, name, err)
	}

	g.log.Debug("Query completed", "query", name, "address", address, "records", len(records))
	return records, nil
}
