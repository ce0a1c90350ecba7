package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/baseline"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func NewBaselineRemover(options ...types.Option[types.BaselineRemover]) types.BaselineRemover {
	return baseline.NewRemover(options...)
}

// BaselineRemoverWithLogger adds loggers to the BaselineRemover.
func BaselineRemoverWithLogger(logger ...types.Logger) types.Option[types.BaselineRemover] {
	return baseline.WithLogger(logger...)
}

// BaselineRemoverWithSensor adds sensors to the BaselineRemover.
func BaselineRemoverWithSensor(sensor ...types.Sensor) types.Option[types.BaselineRemover] {
	return baseline.WithSensor(sensor...)
}
