package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatalf("expected error for explicit missing config path")
	}

	cfg = defaultConfig()
	if cfg.Classify.Window != 0.01 {
		t.Fatalf("expected default window 0.01, got %v", cfg.Classify.Window)
	}
	if cfg.Cutout.NumPre != 9 || cfg.Cutout.Length != 32 {
		t.Fatalf("expected default cutout 9/32, got %d/%d", cfg.Cutout.NumPre, cfg.Cutout.Length)
	}
	if cfg.Recording.SamplingRate != 32000 {
		t.Fatalf("expected default sampling rate 32000, got %v", cfg.Recording.SamplingRate)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spikeband.toml")
	content := `
[recording]
path = "/data/session1.dat"
channel_count = 32

[classify]
window = 0.02

[align]
max_concurrency = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Recording.Path != "/data/session1.dat" || cfg.Recording.ChannelCount != 32 {
		t.Fatalf("recording overrides not applied: %+v", cfg.Recording)
	}
	if cfg.Classify.Window != 0.02 {
		t.Fatalf("expected window 0.02, got %v", cfg.Classify.Window)
	}
	if cfg.Align.MaxConcurrency != 8 {
		t.Fatalf("expected max_concurrency 8, got %d", cfg.Align.MaxConcurrency)
	}
	// Untouched sections keep their defaults.
	if cfg.Cutout.Length != 32 || cfg.Spectral.MainsFrequency != 60 {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spikeband.toml")
	if err := os.WriteFile(path, []byte("[classify]\nwindow = -1.0\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("expected validation error for negative window")
	}
}

func TestReadTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")
	content := "# stimulation pulses\n1.0\n\n2.5\n3.75\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write timestamps: %v", err)
	}

	got, err := readTimestamps(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := []float64{1.0, 2.5, 3.75}
	if len(got) != len(want) {
		t.Fatalf("expected %d timestamps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("timestamp %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestReadTimestamps_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")
	if err := os.WriteFile(path, []byte("1.0\nnot-a-number\n"), 0o644); err != nil {
		t.Fatalf("failed to write timestamps: %v", err)
	}
	if _, err := readTimestamps(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
