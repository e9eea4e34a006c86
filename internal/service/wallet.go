// Package service answers wallet and transaction lookups by running the
// graph query, normalizing the records and optionally caching the result.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/vietddude/wallet-explorer/internal/core/domain"
	"github.com/vietddude/wallet-explorer/internal/core/normalize"
	"github.com/vietddude/wallet-explorer/internal/metrics"
)

// Store runs the read queries.
type Store interface {
	Wallets(ctx context.Context, address string) ([]*neo4j.Record, error)
	Transactions(ctx context.Context, address string) ([]*neo4j.Record, error)
}

// Cache stores normalized payloads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// WalletService is the single entry point used by the HTTP handlers and
// the CLI.
type WalletService struct {
	store      Store
	normalizer *normalize.Normalizer
	cache      Cache
	ttl        time.Duration
	log        *slog.Logger
}

// NewWalletService creates the service. cache may be nil.
func NewWalletService(
	store Store,
	normalizer *normalize.Normalizer,
	cache Cache,
	ttl time.Duration,
) *WalletService {
	return &WalletService{
		store:      store,
		normalizer: normalizer,
		cache:      cache,
		ttl:        ttl,
		log:        slog.Default().With("component", "service"),
	}
}

// Wallets returns every wallet whose addressId equals address.
func (s *WalletService) Wallets(ctx context.Context, address string) ([]domain.Wallet, error) {
	key := "wallet:" + address

	var wallets []domain.Wallet
	if s.fromCache(ctx, "wallet", key, &wallets) {
		return wallets, nil
	}

	records, err := s.store.Wallets(ctx, address)
	if err != nil {
		return nil, err
	}
	wallets = s.normalizer.Wallets(records)

	s.toCache(ctx, key, wallets)
	return wallets, nil
}

// Transactions returns the transaction edges touching address.
func (s *WalletService) Transactions(ctx context.Context, address string) ([]domain.Transaction, error) {
	key := "transactions:" + address

	var txs []domain.Transaction
	if s.fromCache(ctx, "transactions", key, &txs) {
		return txs, nil
	}

	records, err := s.store.Transactions(ctx, address)
	if err != nil {
		return nil, err
	}
	txs, err = s.normalizer.Transactions(records)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize transactions: %w", err)
	}

	s.toCache(ctx, key, txs)
	return txs, nil
}

// fromCache decodes a cached payload into dst. Numbers are decoded as
// json.Number so pass-through values re-encode byte for byte.
func (s *WalletService) fromCache(ctx context.Context, endpoint, key string, dst any) bool {
	if s.cache == nil {
		return false
	}

	payload, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("Cache lookup failed", "key", key, "error", err)
		return false
	}
	if !found {
		metrics.CacheLookups.WithLabelValues(endpoint, "miss").Inc()
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		s.log.Warn("Discarding corrupt cache entry", "key", key, "error", err)
		return false
	}

	metrics.CacheLookups.WithLabelValues(endpoint, "hit").Inc()
	return true
}

func (s *WalletService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("Failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		s.log.Warn("Cache store failed", "key", key, "error", err)
	}
}
