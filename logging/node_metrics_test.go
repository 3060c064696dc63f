package logging

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNodeFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core)

	logger.Info("node finished", NodeFields(NodeMetrics{
		Node:     "tile",
		RunID:    "abcd1234",
		Status:   "ok",
		Duration: 1500 * time.Millisecond,
	}))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	run, ok := entries[0].ContextMap()["run"].(map[string]interface{})
	if !ok {
		t.Fatalf("run field = %#v", entries[0].ContextMap()["run"])
	}
	if run["node"] != "tile" || run["run_id"] != "abcd1234" || run["status"] != "ok" {
		t.Errorf("run = %v", run)
	}
	if run["duration_ms"] != int64(1500) {
		t.Errorf("duration_ms = %#v, want 1500", run["duration_ms"])
	}
}

func TestCacheMetrics_MarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	m := CacheMetrics{Path: "cache/tags.txt", Previous: 3, Input: 2, Persisted: 4, Evicted: 1, Sample: 1, Wrote: true}

	if err := m.MarshalLogObject(enc); err != nil {
		t.Fatalf("MarshalLogObject() error = %v", err)
	}

	want := map[string]interface{}{
		"path":      "cache/tags.txt",
		"previous":  3,
		"input":     2,
		"persisted": 4,
		"evicted":   1,
		"sample":    1,
		"wrote":     true,
	}
	for k, v := range want {
		if enc.Fields[k] != v {
			t.Errorf("%s = %#v, want %#v", k, enc.Fields[k], v)
		}
	}
}
