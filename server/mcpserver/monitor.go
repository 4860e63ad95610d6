package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattermost/msteams-mcp-server/server/recovery"
)

const (
	DefaultMonitorInterval = time.Minute
	monitorCheckTimeout    = 30 * time.Second
	monitorWorkerName      = "health_monitor"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// Monitor periodically checks the Graph connection and serves the last result on /healthz.
type Monitor struct {
	checker  ConnectionChecker
	interval time.Duration
	logger   logrus.FieldLogger
	metrics  recovery.Metrics

	mu        sync.RWMutex
	lastCheck time.Time
	lastErr   error

	quitting atomic.Bool
	quit     chan struct{}
}

type healthStatus struct {
	Status    string `json:"status"`
	LastCheck string `json:"lastCheck,omitempty"`
	Error     string `json:"error,omitempty"`
}

func NewMonitor(checker ConnectionChecker, interval time.Duration, logger logrus.FieldLogger, metrics recovery.Metrics) *Monitor {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Monitor{
		checker:  checker,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
		quit:     make(chan struct{}),
	}
}

func (m *Monitor) Start() {
	m.logger.WithField("interval", m.interval.String()).Debug("Starting the health monitor")
	recovery.GoWorker(monitorWorkerName, recovery.Logrus(m.logger), m.metrics, m.quitting.Load, m.run)
}

func (m *Monitor) Stop() {
	if m.quitting.CompareAndSwap(false, true) {
		close(m.quit)
	}
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check()
	for {
		select {
		case <-m.quit:
			return
		case <-ticker.C:
			m.check()
		}
	}
}

func (m *Monitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), monitorCheckTimeout)
	defer cancel()

	err := m.checker.CheckConnection(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("Graph connection check failed")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastCheck = time.Now()
	m.lastErr = err
}

// Healthy reports the result of the last check. A monitor that has not checked yet is healthy.
func (m *Monitor) Healthy() (bool, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr == nil, m.lastCheck, m.lastErr
}

func (m *Monitor) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	healthy, lastCheck, err := m.Healthy()

	status := healthStatus{Status: "ok"}
	if !lastCheck.IsZero() {
		status.LastCheck = lastCheck.UTC().Format(time.RFC3339)
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
		status.Status = "unavailable"
		status.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(status); encodeErr != nil {
		m.logger.WithError(encodeErr).Warn("Failed to write the health status")
	}
}
