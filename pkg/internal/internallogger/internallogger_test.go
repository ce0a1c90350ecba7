package internallogger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/internallogger"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func TestLoggerLevelRoundTrip(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("warn"))

	if got := logger.GetLevel(); got != types.WarnLevel {
		t.Fatalf("expected warn level, got %v", got)
	}
	if logger.IsLevelEnabled(types.DebugLevel) {
		t.Error("debug should be disabled at warn level")
	}
	if !logger.IsLevelEnabled(types.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}

	logger.SetLevel(types.DebugLevel)
	if got := logger.GetLevel(); got != types.DebugLevel {
		t.Fatalf("expected debug level after SetLevel, got %v", got)
	}
}

func TestLoggerFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "spikeband.log")

	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("info"))
	err := logger.AddSink("file", types.SinkConfig{
		Type:   "file",
		Config: map[string]interface{}{"path": path},
	})
	if err != nil {
		t.Fatalf("add sink: %v", err)
	}

	logger.Info("aligning tagged spikes", "tetrode", 1, "count", 12)
	if err := logger.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "aligning tagged spikes") {
		t.Errorf("log file missing message, got: %s", data)
	}

	sinks, err := logger.ListSinks()
	if err != nil {
		t.Fatalf("list sinks: %v", err)
	}
	if len(sinks) != 1 || sinks[0] != "file" {
		t.Errorf("expected single file sink, got %v", sinks)
	}

	if err := logger.RemoveSink("file"); err != nil {
		t.Fatalf("remove sink: %v", err)
	}
	if err := logger.RemoveSink("file"); err == nil {
		t.Error("expected error removing missing sink")
	}
}

func TestLoggerUnsupportedSink(t *testing.T) {
	logger := internallogger.NewLogger()
	if err := logger.AddSink("bad", types.SinkConfig{Type: "network"}); err == nil {
		t.Error("expected error for unsupported sink type")
	}
}
