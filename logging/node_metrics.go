package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NodeMetrics describes one finished node run.
//
// Example:
//
//	logger.Info("node finished", logging.NodeFields(logging.NodeMetrics{
//		Node:     "cache",
//		RunID:    "3f2a9c1e",
//		Status:   "ok",
//		Duration: 12 * time.Millisecond,
//	}))
type NodeMetrics struct {
	Node     string        `json:"node"`
	RunID    string        `json:"run_id"`
	Status   string        `json:"status"`
	Duration time.Duration `json:"duration"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Duration is encoded
// in milliseconds.
func (m NodeMetrics) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("node", m.Node)
	enc.AddString("run_id", m.RunID)
	enc.AddString("status", m.Status)
	enc.AddInt64("duration_ms", m.Duration.Milliseconds())
	return nil
}

// NodeFields wraps m as a "run" object field.
func NodeFields(m NodeMetrics) zap.Field {
	return zap.Object("run", m)
}

// CacheMetrics are the counts of one line cache merge or read.
type CacheMetrics struct {
	Path      string `json:"path"`
	Previous  int    `json:"previous"`
	Input     int    `json:"input"`
	Persisted int    `json:"persisted"`
	Evicted   int    `json:"evicted"`
	Sample    int    `json:"sample"`
	Wrote     bool   `json:"wrote"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m CacheMetrics) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("path", m.Path)
	enc.AddInt("previous", m.Previous)
	enc.AddInt("input", m.Input)
	enc.AddInt("persisted", m.Persisted)
	enc.AddInt("evicted", m.Evicted)
	enc.AddInt("sample", m.Sample)
	enc.AddBool("wrote", m.Wrote)
	return nil
}

// CacheFields wraps m as a "cache" object field.
func CacheFields(m CacheMetrics) zap.Field {
	return zap.Object("cache", m)
}
