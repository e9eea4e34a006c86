package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vietddude/wallet-explorer/internal/api"
	"github.com/vietddude/wallet-explorer/internal/core/config"
	"github.com/vietddude/wallet-explorer/internal/core/normalize"
	"github.com/vietddude/wallet-explorer/internal/health"
	"github.com/vietddude/wallet-explorer/internal/infra/graph"
	redisclient "github.com/vietddude/wallet-explorer/internal/infra/redis"
	"github.com/vietddude/wallet-explorer/internal/service"
)

// App owns every long-lived collaborator and their lifecycle.
type App struct {
	cfg         Config
	driver      *graph.Driver
	redisClient *redisclient.Client
	service     *service.WalletService
	healthMon   *health.Monitor
	apiServer   *api.Server
	grpcServer  *health.GRPCServer
	log         *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
	errCh  chan error
}

// Config holds the application configuration.
type Config struct {
	Server         config.ServerConfig
	Neo4j          graph.Config
	Redis          redisclient.Config
	Normalizer     normalize.Options
	HealthInterval time.Duration
}

// NewApp creates a new App with all dependencies initialized. The graph
// driver does not connect until the first query, so an unreachable
// database does not prevent startup.
func NewApp(cfg Config) (*App, error) {
	// 1. Graph store
	driver, err := graph.NewDriver(cfg.Neo4j)
	if err != nil {
		return nil, fmt.Errorf("failed to init graph driver: %w", err)
	}
	gateway := graph.NewGateway(driver)

	// 2. Optional response cache
	var redisClient *redisclient.Client
	var cache service.Cache
	var cachePinger health.Pinger
	if cfg.Redis.URL != "" {
		redisClient, err = redisclient.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("Failed to connect to Redis, response cache disabled", "error", err)
			redisClient = nil
		} else {
			cache = redisClient
			cachePinger = redisClient
			slog.Info("Response cache enabled", "ttl", cfg.Redis.CacheTTL)
		}
	}

	// 3. Service
	svc := service.NewWalletService(gateway, normalize.New(cfg.Normalizer), cache, cfg.Redis.CacheTTL)
	if cfg.Normalizer.UniformIntegers {
		slog.Info("Uniform integer conversion enabled")
	}

	// 4. Health
	interval := cfg.HealthInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	healthMon := health.NewMonitor(driver, cachePinger, interval)

	var grpcServer *health.GRPCServer
	if cfg.Server.GRPCPort > 0 {
		grpcServer = health.NewGRPCServer(cfg.Server.GRPCPort)
		healthMon.OnStatusChange(grpcServer.SetStatus)
	}

	// 5. HTTP
	apiServer := api.NewServer(api.Config{
		Port:            cfg.Server.Port,
		StaticDir:       cfg.Server.StaticDir,
		StrictAddresses: cfg.Server.StrictAddresses,
	}, svc, healthMon)

	return &App{
		cfg:         cfg,
		driver:      driver,
		redisClient: redisClient,
		service:     svc,
		healthMon:   healthMon,
		apiServer:   apiServer,
		grpcServer:  grpcServer,
		log:         slog.Default(),
		errCh:       make(chan error, 2),
	}, nil
}

// Service returns the wallet service, for one-shot CLI queries.
func (a *App) Service() *service.WalletService {
	return a.service
}

// Err reports a server that stopped serving on its own, such as a listener
// that could not bind its port.
func (a *App) Err() <-chan error {
	return a.errCh
}

// Start starts the servers and the health probe loop.
func (a *App) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.healthMon.Start(ctx)
	}()

	go func() {
		if err := a.apiServer.Start(); err != nil {
			a.log.Error("HTTP server failed", "error", err)
			a.errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.grpcServer != nil {
		go func() {
			a.log.Info("gRPC health server running", "port", a.cfg.Server.GRPCPort)
			if err := a.grpcServer.Start(); err != nil {
				a.log.Error("gRPC health server failed", "error", err)
				a.errCh <- fmt.Errorf("grpc health server: %w", err)
			}
		}()
	}

	return nil
}

// Stop stops the servers, then closes the cache and the graph driver.
func (a *App) Stop(ctx context.Context) error {
	a.log.Info("Stopping wallet explorer...")

	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()

	var errs []error
	if err := a.apiServer.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if a.grpcServer != nil {
		a.grpcServer.Stop()
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Warn("Failed to close Redis", "error", err)
		}
	}

	if err := a.driver.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("graph driver close: %w", err))
	}

	return errors.Join(errs...)
}
