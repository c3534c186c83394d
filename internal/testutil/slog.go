// Package testutil provides test helpers shared across packages.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// Record is one captured log entry.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is a slog.Handler that keeps every record in memory so
// tests can assert on what a component logged.
type CaptureHandler struct {
	store *captureStore
	bound []slog.Attr
	t     *testing.T
}

type captureStore struct {
	mu      sync.Mutex
	records []Record
}

// NewLogger returns a logger whose output is captured by the returned
// handler. Records are also echoed through t.Logf for debugging.
func NewLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	handler := &CaptureHandler{store: &captureStore{}, t: t}
	return slog.New(handler), handler
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.bound))
	for _, a := range h.bound {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.store.mu.Lock()
	h.store.records = append(h.store.records, Record{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	h.store.mu.Unlock()

	if h.t != nil {
		h.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}
	return nil
}

// Enabled implements slog.Handler. Tests capture every level.
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. The child shares the parent's
// record store.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := make([]slog.Attr, 0, len(h.bound)+len(attrs))
	bound = append(bound, h.bound...)
	bound = append(bound, attrs...)
	return &CaptureHandler{store: h.store, bound: bound, t: h.t}
}

// WithGroup implements slog.Handler. Groups are not used in assertions.
func (h *CaptureHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of all captured records.
func (h *CaptureHandler) Records() []Record {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	records := make([]Record, len(h.store.records))
	copy(records, h.store.records)
	return records
}

// ByLevel returns the captured records at one level.
func (h *CaptureHandler) ByLevel(level slog.Level) []Record {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	var filtered []Record
	for _, r := range h.store.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// HasMessage reports whether any record's message contains substr.
func (h *CaptureHandler) HasMessage(substr string) bool {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	for _, r := range h.store.records {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

// HasAttr reports whether any record carries the attribute.
func (h *CaptureHandler) HasAttr(key string, value any) bool {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	for _, r := range h.store.records {
		if v, ok := r.Attrs[key]; ok && v == value {
			return true
		}
	}
	return false
}

// Count returns the number of captured records.
func (h *CaptureHandler) Count() int {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return len(h.store.records)
}
