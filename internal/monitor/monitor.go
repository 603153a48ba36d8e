// Package monitor records duration metrics and threshold alerts for the
// progression core's public operations. Monitoring is advisory: it never
// blocks or fails the operation it observes.
package monitor

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
)

// Severity classifies a threshold alert
type Severity string

// Severities
const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Default thresholds; operations in this core are in-memory plus a few
// Redis round trips, so anything slower deserves a look.
const (
	DefaultWarnThreshold     = 100 * time.Millisecond
	DefaultCriticalThreshold = 500 * time.Millisecond
)

// Alert is one threshold violation record
type Alert struct {
	Operation string        `json:"operation"`
	Duration  time.Duration `json:"duration"`
	Threshold time.Duration `json:"threshold"`
	Severity  Severity      `json:"severity"`
}

// Config holds the dependencies for the monitor
type Config struct {
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
	// Logger defaults to slog.Default()
	Logger            *slog.Logger
	Clock             clock.Clock
	WarnThreshold     time.Duration
	CriticalThreshold time.Duration
}

// Monitor observes operation durations
type Monitor struct {
	durations *prometheus.HistogramVec
	alerts    *prometheus.CounterVec
	logger    *slog.Logger
	clock     clock.Clock
	warn      time.Duration
	critical  time.Duration
}

// New creates a monitor and registers its collectors
func New(cfg *Config) (*Monitor, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	warn := cfg.WarnThreshold
	if warn <= 0 {
		warn = DefaultWarnThreshold
	}
	critical := cfg.CriticalThreshold
	if critical <= 0 {
		critical = DefaultCriticalThreshold
	}
	if critical < warn {
		return nil, errors.InvalidArgument("critical threshold cannot be below warn threshold")
	}

	m := &Monitor{
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "epic",
			Subsystem: "progression",
			Name:      "operation_duration_seconds",
			Help:      "Duration of progression core operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epic",
			Subsystem: "progression",
			Name:      "operation_threshold_alerts_total",
			Help:      "Operations exceeding their duration thresholds.",
		}, []string{"operation", "severity"}),
		logger:   logger,
		clock:    c,
		warn:     warn,
		critical: critical,
	}

	if err := reg.Register(m.durations); err != nil {
		return nil, errors.Wrap(err, "failed to register duration histogram")
	}
	if err := reg.Register(m.alerts); err != nil {
		return nil, errors.Wrap(err, "failed to register alert counter")
	}
	return m, nil
}

// Observe records one operation's duration and returns an alert record if
// a threshold was exceeded, nil otherwise.
func (m *Monitor) Observe(operation string, duration time.Duration) *Alert {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())

	switch {
	case duration >= m.critical:
		m.alerts.WithLabelValues(operation, string(SeverityCritical)).Inc()
		m.logger.Error("operation exceeded critical threshold",
			"operation", operation, "duration", duration, "threshold", m.critical)
		return &Alert{Operation: operation, Duration: duration, Threshold: m.critical, Severity: SeverityCritical}
	case duration >= m.warn:
		m.alerts.WithLabelValues(operation, string(SeverityWarning)).Inc()
		m.logger.Warn("operation exceeded warn threshold",
			"operation", operation, "duration", duration, "threshold", m.warn)
		return &Alert{Operation: operation, Duration: duration, Threshold: m.warn, Severity: SeverityWarning}
	default:
		return nil
	}
}

// Track starts a timer for an operation. The returned func records the
// elapsed duration when called, typically via defer.
func (m *Monitor) Track(operation string) func() *Alert {
	start := m.clock.Now()
	return func() *Alert {
		return m.Observe(operation, m.clock.Now().Sub(start))
	}
}
