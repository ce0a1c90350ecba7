package sensor

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithOnClassifyCompleteFunc registers callbacks fired after a partition.
func WithOnClassifyCompleteFunc(callbacks ...func(types.ComponentMetadata, int, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnClassifyComplete(callbacks...)
	}
}

// WithOnCutoutsExtractedFunc registers callbacks fired after cutout extraction.
func WithOnCutoutsExtractedFunc(callbacks ...func(types.ComponentMetadata, int, int, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnCutoutsExtracted(callbacks...)
	}
}

// WithOnBaselineRemovedFunc registers callbacks fired after baseline removal.
func WithOnBaselineRemovedFunc(callbacks ...func(types.ComponentMetadata, []float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnBaselineRemoved(callbacks...)
	}
}

// WithOnWaveformAlignedFunc registers callbacks fired per aligned waveform.
func WithOnWaveformAlignedFunc(callbacks ...func(types.ComponentMetadata, int, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnWaveformAligned(callbacks...)
	}
}

// WithOnAlignCompleteFunc registers callbacks fired after a full alignment pass.
func WithOnAlignCompleteFunc(callbacks ...func(types.ComponentMetadata, int, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnAlignComplete(callbacks...)
	}
}

// WithOnSpectralWarningFunc registers callbacks fired for flagged channels.
func WithOnSpectralWarningFunc(callbacks ...func(types.ComponentMetadata, types.ChannelSpectrum)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSpectralWarning(callbacks...)
	}
}

// WithOnRenderCompleteFunc registers callbacks fired after a figure is written.
func WithOnRenderCompleteFunc(callbacks ...func(types.ComponentMetadata, string, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnRenderComplete(callbacks...)
	}
}

// WithOnExportCompleteFunc registers callbacks fired after an export is written.
func WithOnExportCompleteFunc(callbacks ...func(types.ComponentMetadata, string, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnExportComplete(callbacks...)
	}
}

// WithOnSessionStartFunc registers callbacks fired when a session begins.
func WithOnSessionStartFunc(callbacks ...func(types.ComponentMetadata, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSessionStart(callbacks...)
	}
}

// WithOnSessionCompleteFunc registers callbacks fired when a session finishes.
func WithOnSessionCompleteFunc(callbacks ...func(types.ComponentMetadata, int, int, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSessionComplete(callbacks...)
	}
}
