package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/spectral"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// ChannelSpectrum summarizes the spectral content of one wideband channel.
type ChannelSpectrum = types.ChannelSpectrum

// Peak is one local maximum of a channel's power spectrum.
type Peak = types.Peak

func NewSpectralMeter(options ...types.Option[types.SpectralMeter]) types.SpectralMeter {
	return spectral.NewMeter(options...)
}

// SpectralMeterWithLogger adds loggers to the SpectralMeter.
func SpectralMeterWithLogger(logger ...types.Logger) types.Option[types.SpectralMeter] {
	return spectral.WithLogger(logger...)
}

// SpectralMeterWithSensor adds sensors to the SpectralMeter.
func SpectralMeterWithSensor(sensor ...types.Sensor) types.Option[types.SpectralMeter] {
	return spectral.WithSensor(sensor...)
}

// SpectralMeterWithSegmentLength bounds how many samples per channel are analyzed.
func SpectralMeterWithSegmentLength(length int) types.Option[types.SpectralMeter] {
	return spectral.WithSegmentLength(length)
}

// SpectralMeterWithMainsFrequency sets the line frequency checked for hum, in Hz.
func SpectralMeterWithMainsFrequency(freq float64) types.Option[types.SpectralMeter] {
	return spectral.WithMainsFrequency(freq)
}

// SpectralMeterWithSNRThreshold sets the mains SNR above which a channel is flagged.
func SpectralMeterWithSNRThreshold(threshold float64) types.Option[types.SpectralMeter] {
	return spectral.WithSNRThreshold(threshold)
}

// SpectralMeterWithMaxPeaks caps how many spectral peaks are reported per channel.
func SpectralMeterWithMaxPeaks(max int) types.Option[types.SpectralMeter] {
	return spectral.WithMaxPeaks(max)
}
