package types

// Sensor provides callback hooks for pipeline telemetry. Components invoke the
// hooks as they work; callers register callbacks to observe progress without
// coupling to any component's internals.
type Sensor interface {
	RegisterOnClassifyComplete(...func(ComponentMetadata, int, int))
	RegisterOnCutoutsExtracted(...func(ComponentMetadata, int, int, int))
	RegisterOnBaselineRemoved(...func(ComponentMetadata, []float64))
	RegisterOnWaveformAligned(...func(ComponentMetadata, int, int))
	RegisterOnAlignComplete(...func(ComponentMetadata, int, int))
	RegisterOnSpectralWarning(...func(ComponentMetadata, ChannelSpectrum))
	RegisterOnRenderComplete(...func(ComponentMetadata, string, int))
	RegisterOnExportComplete(...func(ComponentMetadata, string, int))
	RegisterOnSessionStart(...func(ComponentMetadata, int))
	RegisterOnSessionComplete(...func(ComponentMetadata, int, int, int))

	// InvokeOnClassifyComplete reports a finished partition with the tagged and
	// spontaneous subset sizes.
	InvokeOnClassifyComplete(cm ComponentMetadata, tagged, spontaneous int)
	// InvokeOnCutoutsExtracted reports an extracted set's count and (L, C) shape.
	InvokeOnCutoutsExtracted(cm ComponentMetadata, count, length, channels int)
	// InvokeOnBaselineRemoved reports the per-channel means that were subtracted.
	InvokeOnBaselineRemoved(cm ComponentMetadata, means []float64)
	// InvokeOnWaveformAligned reports one waveform's index and applied shift.
	InvokeOnWaveformAligned(cm ComponentMetadata, index, offset int)
	// InvokeOnAlignComplete reports the reference index and aligned count.
	InvokeOnAlignComplete(cm ComponentMetadata, refIndex, count int)
	// InvokeOnSpectralWarning reports a channel flagged by the spectral meter.
	InvokeOnSpectralWarning(cm ComponentMetadata, spectrum ChannelSpectrum)
	// InvokeOnRenderComplete reports a written figure and its cutout count.
	InvokeOnRenderComplete(cm ComponentMetadata, path string, plotted int)
	// InvokeOnExportComplete reports a written export file and its row count.
	InvokeOnExportComplete(cm ComponentMetadata, path string, rows int)
	// InvokeOnSessionStart reports the tetrode a session begins processing.
	InvokeOnSessionStart(cm ComponentMetadata, tetrode int)
	// InvokeOnSessionComplete reports final tagged and spontaneous set sizes.
	InvokeOnSessionComplete(cm ComponentMetadata, tetrode, tagged, spontaneous int)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
