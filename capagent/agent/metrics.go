package agent

import (
	"slices"
	"sync"
	"time"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"gonum.org/v1/gonum/stat"
)

// MetricsCollector collects per-capability dispatch metrics.
type MetricsCollector struct {
	mu sync.RWMutex

	messageCount int64
	errorCount   int64
	panicCount   int64

	capabilities map[ports.Label]*capabilityMetrics
	latency      []time.Duration
}

type capabilityMetrics struct {
	requests int64
	errors   int64
	latency  []time.Duration
}

// CapabilityStats is the summary for one capability label.
type CapabilityStats struct {
	Requests int64              `json:"requests" yaml:"requests"`
	Errors   int64              `json:"errors" yaml:"errors"`
	Latency  LatencyPercentiles `json:"latency" yaml:"latency"`
}

// LatencyPercentiles represents latency percentiles
type LatencyPercentiles struct {
	P50 time.Duration `json:"p50" yaml:"p50"`
	P95 time.Duration `json:"p95" yaml:"p95"`
	P99 time.Duration `json:"p99" yaml:"p99"`
}

// MetricsSummary represents a summary of collected metrics
type MetricsSummary struct {
	Messages     int64                           `json:"messages" yaml:"messages"`
	Errors       int64                           `json:"errors" yaml:"errors"`
	Panics       int64                           `json:"panics" yaml:"panics"`
	Latency      LatencyPercentiles              `json:"latency" yaml:"latency"`
	Capabilities map[ports.Label]CapabilityStats `json:"capabilities" yaml:"capabilities"`
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		capabilities: make(map[ports.Label]*capabilityMetrics),
		latency:      make([]time.Duration, 0, 256),
	}
}

// RecordDispatch records one processed message under the label it was classified to.
func (mc *MetricsCollector) RecordDispatch(label ports.Label, duration time.Duration, err error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.messageCount++
	mc.latency = append(mc.latency, duration)

	m, ok := mc.capabilities[label]
	if !ok {
		m = &capabilityMetrics{}
		mc.capabilities[label] = m
	}
	m.requests++
	m.latency = append(m.latency, duration)
	if err != nil {
		m.errors++
		mc.errorCount++
	}
}

// RecordPanic counts a recovered panic. The dispatch itself is recorded separately.
func (mc *MetricsCollector) RecordPanic() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.panicCount++
}

// GetSummary returns a summary of collected metrics
func (mc *MetricsCollector) GetSummary() MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	summary := MetricsSummary{
		Messages:     mc.messageCount,
		Errors:       mc.errorCount,
		Panics:       mc.panicCount,
		Latency:      calculatePercentiles(mc.latency),
		Capabilities: make(map[ports.Label]CapabilityStats, len(mc.capabilities)),
	}
	for label, m := range mc.capabilities {
		summary.Capabilities[label] = CapabilityStats{
			Requests: m.requests,
			Errors:   m.errors,
			Latency:  calculatePercentiles(m.latency),
		}
	}
	return summary
}

// Reset clears all collected metrics
func (mc *MetricsCollector) Reset() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.messageCount = 0
	mc.errorCount = 0
	mc.panicCount = 0
	mc.latency = mc.latency[:0]
	mc.capabilities = make(map[ports.Label]*capabilityMetrics)
}

// calculatePercentiles calculates p50, p95, p99 latencies
func calculatePercentiles(latencies []time.Duration) LatencyPercentiles {
	if len(latencies) == 0 {
		return LatencyPercentiles{}
	}

	sorted := make([]float64, len(latencies))
	for i, d := range latencies {
		sorted[i] = float64(d)
	}
	slices.Sort(sorted)

	quantile := func(p float64) time.Duration {
		return time.Duration(stat.Quantile(p, stat.Empirical, sorted, nil))
	}
	return LatencyPercentiles{
		P50: quantile(0.50),
		P95: quantile(0.95),
		P99: quantile(0.99),
	}
}
