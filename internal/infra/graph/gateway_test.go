package graph

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	records []*neo4j.Record
	err     error

	mu     sync.Mutex
	cypher string
	params map[string]any
	closed int
}

func (s *fakeSession) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cypher = cypher
	s.params = params
	return s.records, s.err
}

func (s *fakeSession) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	return nil
}

type fakeFactory struct {
	session *fakeSession
	opened  int
}

func (f *fakeFactory) NewSession(ctx context.Context) Session {
	f.opened++
	return f.session
}

func TestGateway_WalletsBindsParameter(t *testing.T) {
	rec := &neo4j.Record{Keys: []string{"addressId"}, Values: []any{"0xABC"}}
	factory := &fakeFactory{session: &fakeSession{records: []*neo4j.Record{rec}}}
	gw := NewGateway(factory)

	records, err := gw.Wallets(context.Background(), "0xABC' OR 1=1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, walletQuery, factory.session.cypher)
	assert.Equal(t, map[string]any{"address": "0xABC' OR 1=1"}, factory.session.params)
	assert.NotContains(t, factory.session.cypher, "0xABC", "address must not be spliced into the query text")
	assert.Equal(t, 1, factory.opened)
	assert.Equal(t, 1, factory.session.closed)
}

func TestGateway_TransactionsUsesTransactionQuery(t *testing.T) {
	factory := &fakeFactory{session: &fakeSession{}}
	gw := NewGateway(factory)

	records, err := gw.Transactions(context.Background(), "0xABC")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, transactionsQuery, factory.session.cypher)
	assert.Equal(t, 1, factory.session.closed)
}

func TestGateway_ClosesSessionOnFailure(t *testing.T) {
	cause := errors.New("connection refused")
	factory := &fakeFactory{session: &fakeSession{err: cause}}
	gw := NewGateway(factory)

	_, err := gw.Wallets(context.Background(), "0xABC")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuery)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, factory.session.closed)
}

func TestGateway_ClosesSessionAfterCancel(t *testing.T) {
	factory := &fakeFactory{session: &fakeSession{err: context.Canceled}}
	gw := NewGateway(factory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Transactions(ctx, "0xABC")
	require.Error(t, err)
	assert.Equal(t, 1, factory.session.closed)
}

func TestNewDriver_RejectsBadURI(t *testing.T) {
	_, err := NewDriver(Config{URI: "ftp://nowhere", Username: "neo4j", Password: "x"})
	require.Error(t, err)
}
