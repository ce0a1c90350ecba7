package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/extractor"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func NewExtractor(options ...types.Option[types.Extractor]) types.Extractor {
	return extractor.NewExtractor(options...)
}

// ExtractorWithLogger adds loggers to the Extractor.
func ExtractorWithLogger(logger ...types.Logger) types.Option[types.Extractor] {
	return extractor.WithLogger(logger...)
}

// ExtractorWithSensor adds sensors to the Extractor.
func ExtractorWithSensor(sensor ...types.Sensor) types.Option[types.Extractor] {
	return extractor.WithSensor(sensor...)
}

// ExtractorWithNumPre sets the number of samples kept before each spike sample.
func ExtractorWithNumPre(numPre int) types.Option[types.Extractor] {
	return extractor.WithNumPre(numPre)
}

// ExtractorWithCutoutLength sets the total sample count of each cutout.
func ExtractorWithCutoutLength(length int) types.Option[types.Extractor] {
	return extractor.WithCutoutLength(length)
}
