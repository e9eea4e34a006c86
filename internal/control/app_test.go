package control

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vietddude/wallet-explorer/internal/core/config"
	"github.com/vietddude/wallet-explorer/internal/infra/graph"
)

func TestApp_Wiring(t *testing.T) {
	cfg := Config{
		Server: config.ServerConfig{
			Port:      0,
			StaticDir: t.TempDir(),
		},
		Neo4j: graph.Config{
			URI:      "bolt://127.0.0.1:1",
			Username: "neo4j",
			Password: "12345678",
		},
		HealthInterval: time.Hour,
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app.Service())
	require.Nil(t, app.redisClient, "no redis URL means no cache")
	require.Nil(t, app.grpcServer, "grpc port 0 disables the health server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, app.Start(ctx))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, app.Stop(ctx))
}

func TestApp_RejectsBadGraphURI(t *testing.T) {
	_, err := NewApp(Config{Neo4j: graph.Config{URI: "ftp://nowhere"}})
	require.Error(t, err)
}

func TestApp_ReportsListenFailure(t *testing.T) {
	lis, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer lis.Close()

	app, err := NewApp(Config{
		Server: config.ServerConfig{
			Port:      lis.Addr().(*net.TCPAddr).Port,
			StaticDir: t.TempDir(),
		},
		Neo4j:          graph.Config{URI: "bolt://127.0.0.1:1"},
		HealthInterval: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx))

	select {
	case err := <-app.Err():
		require.ErrorContains(t, err, "http server")
	case <-ctx.Done():
		t.Fatal("port conflict was not reported")
	}

	require.NoError(t, app.Stop(ctx))
}
