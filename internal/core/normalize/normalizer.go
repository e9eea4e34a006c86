// Package normalize maps raw graph records onto the JSON contract served
// by the API.
package normalize

import (
	"errors"
	"fmt"
	"math"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/vietddude/wallet-explorer/internal/core/domain"
)

// ErrUnexpectedType is returned when an integer field holds a value that
// is neither an integer, a float nor null.
var ErrUnexpectedType = errors.New("unexpected field type")

// Options controls integer conversion.
type Options struct {
	// UniformIntegers converts every integer field with full precision.
	// When false, transaction_index, gas, gas_used, block_number and
	// block_timestamp keep only their low 32 bits while gas_price is
	// reconstructed in full. Existing clients depend on that split.
	UniformIntegers bool `yaml:"uniform_integers"`
}

// Normalizer converts graph records to domain values. It holds no state
// beyond its options and is safe for concurrent use.
type Normalizer struct {
	opts Options
}

// New creates a Normalizer.
func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Wallets normalizes wallet records. The result is never nil.
func (n *Normalizer) Wallets(records []*neo4j.Record) []domain.Wallet {
	wallets := make([]domain.Wallet, 0, len(records))
	for _, rec := range records {
		wallets = append(wallets, n.Wallet(rec))
	}
	return wallets
}

// Wallet passes every field through unchanged.
func (n *Normalizer) Wallet(rec *neo4j.Record) domain.Wallet {
	return domain.Wallet{
		AddressID: field(rec, "addressId"),
		Type:      field(rec, "type"),
		BTC:       field(rec, "btc"),
		ETH:       field(rec, "eth"),
	}
}

// Transactions normalizes transaction records. The result is never nil.
func (n *Normalizer) Transactions(records []*neo4j.Record) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0, len(records))
	for i, rec := range records {
		tx, err := n.Transaction(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Transaction normalizes a single transaction record.
func (n *Normalizer) Transaction(rec *neo4j.Record) (domain.Transaction, error) {
	narrow := lowBits
	if n.opts.UniformIntegers {
		narrow = fullValue
	}

	tx := domain.Transaction{
		Hash:           field(rec, "hash"),
		Value:          field(rec, "value"),
		Input:          field(rec, "input"),
		TransactionFee: field(rec, "transaction_fee"),
		BlockHash:      field(rec, "block_hash"),
		FromAddress:    field(rec, "from_address"),
		ToAddress:      field(rec, "to_address"),
	}

	ints := []struct {
		key     string
		dst     **int64
		convert func(Integer) int64
	}{
		{"transaction_index", &tx.TransactionIndex, narrow},
		{"gas", &tx.Gas, narrow},
		{"gas_used", &tx.GasUsed, narrow},
		{"gas_price", &tx.GasPrice, fullValue},
		{"block_number", &tx.BlockNumber, narrow},
		{"block_timestamp", &tx.BlockTimestamp, narrow},
	}
	for _, f := range ints {
		v, err := integerField(rec, f.key, f.convert)
		if err != nil {
			return domain.Transaction{}, err
		}
		*f.dst = v
	}

	return tx, nil
}

func lowBits(i Integer) int64   { return i.LowBits() }
func fullValue(i Integer) int64 { return i.ToNumber() }

func field(rec *neo4j.Record, key string) any {
	v, _ := rec.Get(key)
	return v
}

func integerField(rec *neo4j.Record, key string, convert func(Integer) int64) (*int64, error) {
	raw, _ := rec.Get(key)

	var wire Integer
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int64:
		wire = IntegerFromInt64(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s is %v", ErrUnexpectedType, key, v)
		}
		wire = IntegerFromInt64(floatToInt64(v))
	default:
		return nil, fmt.Errorf("%w: %s is %T", ErrUnexpectedType, key, raw)
	}

	out := convert(wire)
	return &out, nil
}

// floatToInt64 truncates toward zero and saturates outside the int64 range.
func floatToInt64(v float64) int64 {
	const limit = float64(1 << 63)
	switch {
	case v >= limit:
		return math.MaxInt64
	case v < -limit:
		return math.MinInt64
	}
	return int64(v)
}
