package status

import "sync"

// MetricMap allocates one metric per key on first use
// Returned pointers never move, so callers keep them and update the atomics directly
type MetricMap[T any] struct {
	mu      sync.Mutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for key, creating a zero metric if absent
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	metric, ok := m.metrics[key]
	if !ok {
		metric = new(T)
		m.metrics[key] = metric
	}
	return metric
}
