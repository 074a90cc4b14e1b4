package util

import "sync"

const metricsBufferSize = 256

// MetricsGetter allows access to tracked performance metrics.
type MetricsGetter interface {
	Avg() uint64
	GetLast() uint64
}

// MetricsHandler stores tracked performance metrics (e.g. render durations
// in microseconds) in a ring buffer and computes a rolling average.
// It is safe for concurrent use.
type MetricsHandler struct {
	mtx    sync.Mutex
	values [metricsBufferSize]uint64
	index  int
	filled int
}

// GetLast returns the most recently added value, or zero if none was added.
func (h *MetricsHandler) GetLast() uint64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.filled == 0 {
		return 0
	}
	return h.values[h.index]
}

// Add inserts a new value into the ring buffer.
func (h *MetricsHandler) Add(value uint64) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.filled > 0 {
		h.index = (h.index + 1) % metricsBufferSize
	}
	h.values[h.index] = value
	if h.filled < metricsBufferSize {
		h.filled++
	}
}

// Avg returns the average of the values in the ring buffer.
func (h *MetricsHandler) Avg() uint64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.filled == 0 {
		return 0
	}
	sum := uint64(0)
	for i := 0; i < h.filled; i++ {
		sum += h.values[i]
	}
	return sum / uint64(h.filled)
}
