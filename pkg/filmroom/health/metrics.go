package health

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics keeps an in-process rolling window of request and error counts,
// bucketed per minute. It is independent of the persistent store: a database
// outage must not take the request counters down with it.
type Metrics struct {
	mu        sync.Mutex
	startedAt time.Time
	retention time.Duration
	buckets   map[int64]*bucket // keyed by unix minute
}

type bucket struct {
	requests int64
	errors   int64
}

// NewMetrics creates a Metrics window retaining the given duration
func NewMetrics(retention time.Duration) *Metrics {
	return &Metrics{
		startedAt: time.Now(),
		retention: retention,
		buckets:   make(map[int64]*bucket),
	}
}

// Record counts one finished request. Statuses of 500 and above count as
// errors.
func (m *Metrics) Record(status int) {
	minute := time.Now().Unix() / 60

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[minute]
	if !ok {
		b = &bucket{}
		m.buckets[minute] = b
	}
	b.requests++
	if status >= 500 {
		b.errors++
	}
}

// Snapshot returns the request and error totals inside the retention window
func (m *Metrics) Snapshot() (requests, errors int64) {
	cutoff := time.Now().Add(-m.retention).Unix() / 60

	m.mu.Lock()
	defer m.mu.Unlock()

	for minute, b := range m.buckets {
		if minute >= cutoff {
			requests += b.requests
			errors += b.errors
		}
	}
	return requests, errors
}

// Uptime returns how long the process has been running
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startedAt)
}

// prune drops buckets older than the retention window
func (m *Metrics) prune(now time.Time) {
	cutoff := now.Add(-m.retention).Unix() / 60

	m.mu.Lock()
	defer m.mu.Unlock()

	for minute := range m.buckets {
		if minute < cutoff {
			delete(m.buckets, minute)
		}
	}
}

// StartPruning launches a goroutine that prunes expired buckets once per
// minute until stop is closed.
func (m *Metrics) StartPruning(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				m.prune(now)
			case <-stop:
				return
			}
		}
	}()
}

// Middleware records every request passing through the engine
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		m.Record(c.Writer.Status())
	}
}
