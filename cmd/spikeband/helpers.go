package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spikeband/spikeband/pkg/builder"
)

// readTimestamps parses a text file of timestamps in seconds, one per line.
// Blank lines and lines starting with # are skipped.
func readTimestamps(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timestamps: %w", err)
	}
	defer file.Close()

	var out []float64
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("parse timestamps: %s line %d: %w", path, line, err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read timestamps: %w", err)
	}
	return out, nil
}

func newLoggerFromConfig(cfg *Config) builder.Logger {
	return builder.NewLogger(builder.LoggerWithLevel(cfg.Log.Level))
}

func newLoaderFromConfig(cfg *Config, logger builder.Logger) builder.WidebandLoader {
	return builder.NewDATLoader(
		builder.DATLoaderWithLogger(logger),
		builder.DATLoaderWithPath(cfg.Recording.Path),
		builder.DATLoaderWithChannelCount(cfg.Recording.ChannelCount),
		builder.DATLoaderWithSamplingRate(cfg.Recording.SamplingRate),
		builder.DATLoaderWithVoltScale(cfg.Recording.VoltScale),
	)
}
