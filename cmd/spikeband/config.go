package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RecordingConfig locates and describes the wideband .dat file.
type RecordingConfig struct {
	Path         string  `toml:"path"`
	ChannelCount int     `toml:"channel_count"`
	SamplingRate float64 `toml:"sampling_rate"`
	VoltScale    float64 `toml:"volt_scale"`
}

// ClassifyConfig controls spike partitioning.
type ClassifyConfig struct {
	Window      float64 `toml:"window"`
	SortedCheck bool    `toml:"sorted_check"`
}

// CutoutConfig controls waveform extraction.
type CutoutConfig struct {
	NumPre int `toml:"num_pre"`
	Length int `toml:"length"`
}

// AlignConfig controls peak alignment of the tagged set.
type AlignConfig struct {
	SearchRadius   int `toml:"search_radius"`
	MaxConcurrency int `toml:"max_concurrency"`
}

// SpectralConfig controls the advisory channel quality scan.
type SpectralConfig struct {
	Enabled        bool    `toml:"enabled"`
	MainsFrequency float64 `toml:"mains_frequency"`
	SNRThreshold   float64 `toml:"snr_threshold"`
}

// OutputConfig controls figure rendering and Parquet export.
type OutputConfig struct {
	PlotDir   string `toml:"plot_dir"`
	ExportDir string `toml:"export_dir"`
	MaxPlot   int    `toml:"max_plot"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the full CLI configuration.
type Config struct {
	Recording RecordingConfig `toml:"recording"`
	Classify  ClassifyConfig  `toml:"classify"`
	Cutout    CutoutConfig    `toml:"cutout"`
	Align     AlignConfig     `toml:"align"`
	Spectral  SpectralConfig  `toml:"spectral"`
	Output    OutputConfig    `toml:"output"`
	Log       LogConfig       `toml:"log"`
}

// defaultConfig returns the configuration applied when no file overrides it.
func defaultConfig() Config {
	return Config{
		Recording: RecordingConfig{
			Path:         "recording.dat",
			ChannelCount: 16,
			SamplingRate: 32000,
			VoltScale:    1.0,
		},
		Classify: ClassifyConfig{
			Window:      0.01,
			SortedCheck: true,
		},
		Cutout: CutoutConfig{
			NumPre: 9,
			Length: 32,
		},
		Align: AlignConfig{
			SearchRadius:   6,
			MaxConcurrency: 1,
		},
		Spectral: SpectralConfig{
			Enabled:        true,
			MainsFrequency: 60,
			SNRThreshold:   10,
		},
		Output: OutputConfig{
			PlotDir: "plots",
			MaxPlot: 100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// loadConfig reads the TOML file at path over the defaults. A missing file is
// not an error when path is empty; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	candidate := path
	if candidate == "" {
		candidate = "spikeband.toml"
	}

	file, err := os.Open(candidate)
	if err != nil {
		if path == "" && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Recording.ChannelCount < 1 {
		return fmt.Errorf("config: recording.channel_count must be positive, got %d", c.Recording.ChannelCount)
	}
	if c.Recording.SamplingRate <= 0 {
		return fmt.Errorf("config: recording.sampling_rate must be positive, got %v", c.Recording.SamplingRate)
	}
	if c.Classify.Window <= 0 {
		return fmt.Errorf("config: classify.window must be positive, got %v", c.Classify.Window)
	}
	if c.Cutout.NumPre < 0 {
		return fmt.Errorf("config: cutout.num_pre must not be negative, got %d", c.Cutout.NumPre)
	}
	if c.Cutout.Length < 1 {
		return fmt.Errorf("config: cutout.length must be positive, got %d", c.Cutout.Length)
	}
	if c.Align.SearchRadius < 0 {
		return fmt.Errorf("config: align.search_radius must not be negative, got %d", c.Align.SearchRadius)
	}
	return nil
}
