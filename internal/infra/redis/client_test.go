package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, prefix string) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewClient(Config{URL: "redis://" + mr.Addr(), Prefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(Config{URL: "not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse redis URL")
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(Config{URL: "redis://" + addr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestClient_KeyPrefix(t *testing.T) {
	c := &Client{prefix: "wallet-explorer"}
	assert.Equal(t, "wallet-explorer:wallet:0xABC", c.key("wallet:0xABC"))
}

func TestClient_GetMiss(t *testing.T) {
	c, _ := newTestClient(t, "")

	payload, found, err := c.Get(context.Background(), "wallet:0xABC")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, payload)
}

func TestClient_SetThenGet(t *testing.T) {
	c, mr := newTestClient(t, "")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "wallet:0xABC", []byte(`[{"addressId":"0xABC"}]`), 30*time.Second))

	payload, found, err := c.Get(ctx, "wallet:0xABC")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"addressId":"0xABC"}]`, string(payload))

	assert.True(t, mr.Exists("wallet-explorer:wallet:0xABC"), "default prefix applied")
	assert.Equal(t, 30*time.Second, mr.TTL("wallet-explorer:wallet:0xABC"))
}

func TestClient_EntryExpires(t *testing.T) {
	c, mr := newTestClient(t, "test")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "transactions:0xABC", []byte("[]"), time.Second))
	assert.True(t, mr.Exists("test:transactions:0xABC"))

	mr.FastForward(2 * time.Second)

	_, found, err := c.Get(ctx, "transactions:0xABC")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_ErrorsWhenServerDown(t *testing.T) {
	c, mr := newTestClient(t, "")
	ctx := context.Background()
	mr.Close()

	_, _, err := c.Get(ctx, "wallet:0xABC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get failed")

	err = c.Set(ctx, "wallet:0xABC", []byte("[]"), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set failed")

	assert.Error(t, c.Ping(ctx))
}
