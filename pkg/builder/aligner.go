package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/aligner"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// DefaultSearchRadius is the half-width of the local peak search window
// applied when none is configured, in samples.
const DefaultSearchRadius = aligner.DefaultSearchRadius

func NewAligner(options ...types.Option[types.Aligner]) types.Aligner {
	return aligner.NewAligner(options...)
}

// AlignerWithLogger adds loggers to the Aligner.
func AlignerWithLogger(logger ...types.Logger) types.Option[types.Aligner] {
	return aligner.WithLogger(logger...)
}

// AlignerWithSensor adds sensors to the Aligner.
func AlignerWithSensor(sensor ...types.Sensor) types.Option[types.Aligner] {
	return aligner.WithSensor(sensor...)
}

// AlignerWithSearchRadius sets the half-width of the local peak search window.
func AlignerWithSearchRadius(radius int) types.Option[types.Aligner] {
	return aligner.WithSearchRadius(radius)
}

// AlignerWithMaxConcurrency sets how many waveforms are aligned in parallel.
func AlignerWithMaxConcurrency(n int) types.Option[types.Aligner] {
	return aligner.WithMaxConcurrency(n)
}
