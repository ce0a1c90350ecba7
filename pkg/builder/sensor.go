package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/sensor"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithOnClassifyCompleteFunc registers a callback for the OnClassifyComplete event.
func SensorWithOnClassifyCompleteFunc(callback ...func(ComponentMetadata, int, int)) types.Option[types.Sensor] {
	return sensor.WithOnClassifyCompleteFunc(callback...)
}

// SensorWithOnCutoutsExtractedFunc registers a callback for the OnCutoutsExtracted event.
func SensorWithOnCutoutsExtractedFunc(callback ...func(ComponentMetadata, int, int, int)) types.Option[types.Sensor] {
	return sensor.WithOnCutoutsExtractedFunc(callback...)
}

// SensorWithOnBaselineRemovedFunc registers a callback for the OnBaselineRemoved event.
func SensorWithOnBaselineRemovedFunc(callback ...func(ComponentMetadata, []float64)) types.Option[types.Sensor] {
	return sensor.WithOnBaselineRemovedFunc(callback...)
}

// SensorWithOnWaveformAlignedFunc registers a callback for the OnWaveformAligned event.
func SensorWithOnWaveformAlignedFunc(callback ...func(ComponentMetadata, int, int)) types.Option[types.Sensor] {
	return sensor.WithOnWaveformAlignedFunc(callback...)
}

// SensorWithOnAlignCompleteFunc registers a callback for the OnAlignComplete event.
func SensorWithOnAlignCompleteFunc(callback ...func(ComponentMetadata, int, int)) types.Option[types.Sensor] {
	return sensor.WithOnAlignCompleteFunc(callback...)
}

// SensorWithOnSpectralWarningFunc registers a callback for the OnSpectralWarning event.
func SensorWithOnSpectralWarningFunc(callback ...func(ComponentMetadata, ChannelSpectrum)) types.Option[types.Sensor] {
	return sensor.WithOnSpectralWarningFunc(callback...)
}

// SensorWithOnRenderCompleteFunc registers a callback for the OnRenderComplete event.
func SensorWithOnRenderCompleteFunc(callback ...func(ComponentMetadata, string, int)) types.Option[types.Sensor] {
	return sensor.WithOnRenderCompleteFunc(callback...)
}

// SensorWithOnExportCompleteFunc registers a callback for the OnExportComplete event.
func SensorWithOnExportCompleteFunc(callback ...func(ComponentMetadata, string, int)) types.Option[types.Sensor] {
	return sensor.WithOnExportCompleteFunc(callback...)
}

// SensorWithOnSessionStartFunc registers a callback for the OnSessionStart event.
func SensorWithOnSessionStartFunc(callback ...func(ComponentMetadata, int)) types.Option[types.Sensor] {
	return sensor.WithOnSessionStartFunc(callback...)
}

// SensorWithOnSessionCompleteFunc registers a callback for the OnSessionComplete event.
func SensorWithOnSessionCompleteFunc(callback ...func(ComponentMetadata, int, int, int)) types.Option[types.Sensor] {
	return sensor.WithOnSessionCompleteFunc(callback...)
}
