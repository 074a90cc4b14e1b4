// Package potatolog provides an in-memory sink for zerolog's JSON output, so
// that the TUI can show recent log entries while it owns the terminal.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries GlobalMemoryLogReaderWriter keeps.
const DefaultCapacity = 1000

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer, keeping
// the most recent entries up to its capacity.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns a log keeping at most capacity entries
// (unbounded if capacity is not positive).
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		log:      []LogEntry{},
		capacity: capacity,
	}
}

// Write appends a log entry to the log, dropping the oldest entry if at
// capacity.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.capacity > 0 && len(w.log) >= w.capacity {
		w.log = append(w.log[:0], w.log[len(w.log)-w.capacity+1:]...)
	}
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Last returns the most recent entry, if any.
func (w *MemoryLogReaderWriter) Last() (LogEntry, bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if len(w.log) == 0 {
		return nil, false
	}
	return w.log[len(w.log)-1], true
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last() (LogEntry, bool)
}
