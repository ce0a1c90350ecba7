package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/wideband"
)

func NewDATLoader(options ...types.Option[types.WidebandLoader]) types.WidebandLoader {
	return wideband.NewDATLoader(options...)
}

// DATLoaderWithLogger adds loggers to the DATLoader.
func DATLoaderWithLogger(logger ...types.Logger) types.Option[types.WidebandLoader] {
	return wideband.WithLogger(logger...)
}

// DATLoaderWithSensor adds sensors to the DATLoader.
func DATLoaderWithSensor(sensor ...types.Sensor) types.Option[types.WidebandLoader] {
	return wideband.WithSensor(sensor...)
}

// DATLoaderWithPath sets the .dat file to read.
func DATLoaderWithPath(path string) types.Option[types.WidebandLoader] {
	return wideband.WithPath(path)
}

// DATLoaderWithChannelCount sets the number of interleaved channels per frame.
func DATLoaderWithChannelCount(count int) types.Option[types.WidebandLoader] {
	return wideband.WithChannelCount(count)
}

// DATLoaderWithSamplingRate sets the acquisition rate in Hz.
func DATLoaderWithSamplingRate(rate float64) types.Option[types.WidebandLoader] {
	return wideband.WithSamplingRate(rate)
}

// DATLoaderWithVoltScale sets the multiplier applied to raw int16 samples.
func DATLoaderWithVoltScale(scale float64) types.Option[types.WidebandLoader] {
	return wideband.WithVoltScale(scale)
}
