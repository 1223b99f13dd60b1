package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides lightweight runtime counters for the API
type Monitor struct {
	metrics      map[string]interface{}
	counters     map[string]int64
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		counters:  make(map[string]int64),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// IncrCounter increments a named counter
func (m *Monitor) IncrCounter(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.counters[name]++
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics)+len(m.counters)+1)
	for k, v := range m.metrics {
		metrics[k] = v
	}
	for k, v := range m.counters {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
	m.counters = make(map[string]int64)
}

// RecordOptimizationRequest records the outcome of one optimization request
func (m *Monitor) RecordOptimizationRequest(operation string, results int) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	m.counters[operation+"_requests"]++
	m.metrics[operation+"_last_result_count"] = results
	m.metrics[operation+"_last_at"] = time.Now().Format(time.RFC3339)
}
