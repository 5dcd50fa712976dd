package refresh

import (
	"sync"
	"time"
)

// Metrics tracks refresh run statistics.
type Metrics struct {
	mu             sync.RWMutex
	processedCount int64
	errorCount     int64
	startTime      time.Time
	lastProcessed  time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// IncrementProcessed increments the processed record count.
func (m *Metrics) IncrementProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processedCount++
	m.lastProcessed = time.Now()
}

// IncrementError increments the error count.
func (m *Metrics) IncrementError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount++
}

// GetProcessedCount returns the number of processed records.
func (m *Metrics) GetProcessedCount() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.processedCount
}

// GetErrorCount returns the number of errors.
func (m *Metrics) GetErrorCount() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errorCount
}

// GetProcessingDuration returns the time elapsed since tracking started.
func (m *Metrics) GetProcessingDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return time.Since(m.startTime)
}
