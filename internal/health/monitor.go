package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/vietddude/wallet-explorer/internal/metrics"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const (
	componentGraph = "graph_store"
	componentCache = "cache"
)

// Monitor probes the graph store and, when configured, the cache.
type Monitor struct {
	graph    Pinger
	cache    Pinger
	interval time.Duration
	minGap   time.Duration
	timeout  time.Duration

	mu         sync.Mutex
	lastCheck  time.Time
	lastReport Report
	listeners  []func(SystemStatus)
}

// NewMonitor creates a new health monitor. cache may be nil.
func NewMonitor(graph, cache Pinger, interval time.Duration) *Monitor {
	return &Monitor{
		graph:    graph,
		cache:    cache,
		interval: interval,
		minGap:   10 * time.Second,
		timeout:  5 * time.Second,
	}
}

// OnStatusChange registers fn to be called whenever the overall status
// changes, including the first probe.
func (m *Monitor) OnStatusChange(fn func(SystemStatus)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// CheckHealth probes the dependencies. Probes are rate limited; a report
// younger than the minimum gap is returned as is.
func (m *Monitor) CheckHealth(ctx context.Context) Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.lastCheck.IsZero() && time.Since(m.lastCheck) < m.minGap {
		return m.lastReport
	}

	report := Report{
		SystemStatus: StatusHealthy,
		Components:   make(map[string]ComponentHealth),
		CheckedAt:    time.Now(),
	}

	graph := m.probe(ctx, m.graph, StatusCritical)
	report.Components[componentGraph] = graph
	if graph.Status == StatusCritical {
		report.SystemStatus = StatusCritical
		metrics.GraphStoreUp.Set(0)
	} else {
		metrics.GraphStoreUp.Set(1)
	}

	if m.cache != nil {
		cache := m.probe(ctx, m.cache, StatusDegraded)
		report.Components[componentCache] = cache
		if cache.Status == StatusDegraded && report.SystemStatus == StatusHealthy {
			report.SystemStatus = StatusDegraded
		}
	}

	changed := m.lastCheck.IsZero() || report.SystemStatus != m.lastReport.SystemStatus
	m.lastCheck = report.CheckedAt
	m.lastReport = report

	if changed {
		slog.Info("Health status changed", "status", report.SystemStatus)
		for _, fn := range m.listeners {
			fn(report.SystemStatus)
		}
	}

	return report
}

func (m *Monitor) probe(ctx context.Context, p Pinger, onFailure SystemStatus) ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	h := ComponentHealth{
		Status:    StatusHealthy,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		h.Status = onFailure
		h.Error = err.Error()
	}
	return h
}

// Start runs the probe loop until ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	m.CheckHealth(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckHealth(ctx)
		}
	}
}

// ServeHTTP answers GET /health. Critical maps to 503.
func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := m.CheckHealth(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if report.SystemStatus == StatusCritical {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	_ = json.NewEncoder(w).Encode(report)
}
