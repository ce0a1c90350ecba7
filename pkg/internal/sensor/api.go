package sensor

import "github.com/spikeband/spikeband/pkg/internal/types"

// Register methods append callbacks; Invoke methods fire every registered
// callback in registration order with a snapshot taken under the lock, so a
// callback may safely register further callbacks.

func (s *Sensor) RegisterOnClassifyComplete(callbacks ...func(types.ComponentMetadata, int, int)) {
	s.callbackLock.Lock()
	s.onClassifyComplete = append(s.onClassifyComplete, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnClassifyComplete(cm types.ComponentMetadata, tagged, spontaneous int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, int, int))(nil), s.onClassifyComplete...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, tagged, spontaneous)
	}
}

func (s *Sensor) RegisterOnCutoutsExtracted(callbacks ...func(types.ComponentMetadata, int, int, int)) {
	s.callbackLock.Lock()
	s.onCutoutsExtracted = append(s.onCutoutsExtracted, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnCutoutsExtracted(cm types.ComponentMetadata, count, length, channels int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, int, int, int))(nil), s.onCutoutsExtracted...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, count, length, channels)
	}
}

func (s *Sensor) RegisterOnBaselineRemoved(callbacks ...func(types.ComponentMetadata, []float64)) {
	s.callbackLock.Lock()
	s.onBaselineRemoved = append(s.onBaselineRemoved, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnBaselineRemoved(cm types.ComponentMetadata, means []float64) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, []float64))(nil), s.onBaselineRemoved...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, means)
	}
}

func (s *Sensor) RegisterOnWaveformAligned(callbacks ...func(types.ComponentMetadata, int, int)) {
	s.callbackLock.Lock()
	s.onWaveformAligned = append(s.onWaveformAligned, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnWaveformAligned(cm types.ComponentMetadata, index, offset int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, int, int))(nil), s.onWaveformAligned...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, index, offset)
	}
}

func (s *Sensor) RegisterOnAlignComplete(callbacks ...func(types.ComponentMetadata, int, int)) {
	s.callbackLock.Lock()
	s.onAlignComplete = append(s.onAlignComplete, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnAlignComplete(cm types.ComponentMetadata, refIndex, count int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, int, int))(nil), s.onAlignComplete...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, refIndex, count)
	}
}

func (s *Sensor) RegisterOnSpectralWarning(callbacks ...func(types.ComponentMetadata, types.ChannelSpectrum)) {
	s.callbackLock.Lock()
	s.onSpectralWarning = append(s.onSpectralWarning, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnSpectralWarning(cm types.ComponentMetadata, spectrum types.ChannelSpectrum) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, types.ChannelSpectrum))(nil), s.onSpectralWarning...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, spectrum)
	}
}

func (s *Sensor) RegisterOnRenderComplete(callbacks ...func(types.ComponentMetadata, string, int)) {
	s.callbackLock.Lock()
	s.onRenderComplete = append(s.onRenderComplete, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnRenderComplete(cm types.ComponentMetadata, path string, plotted int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, string, int))(nil), s.onRenderComplete...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, path, plotted)
	}
}

func (s *Sensor) RegisterOnExportComplete(callbacks ...func(types.ComponentMetadata, string, int)) {
	s.callbackLock.Lock()
	s.onExportComplete = append(s.onExportComplete, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnExportComplete(cm types.ComponentMetadata, path string, rows int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, string, int))(nil), s.onExportComplete...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, path, rows)
	}
}

func (s *Sensor) RegisterOnSessionStart(callbacks ...func(types.ComponentMetadata, int)) {
	s.callbackLock.Lock()
	s.onSessionStart = append(s.onSessionStart, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnSessionStart(cm types.ComponentMetadata, tetrode int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, int))(nil), s.onSessionStart...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, tetrode)
	}
}

func (s *Sensor) RegisterOnSessionComplete(callbacks ...func(types.ComponentMetadata, int, int, int)) {
	s.callbackLock.Lock()
	s.onSessionComplete = append(s.onSessionComplete, callbacks...)
	s.callbackLock.Unlock()
}

func (s *Sensor) InvokeOnSessionComplete(cm types.ComponentMetadata, tetrode, tagged, spontaneous int) {
	s.callbackLock.Lock()
	callbacks := append(([]func(types.ComponentMetadata, int, int, int))(nil), s.onSessionComplete...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, tetrode, tagged, spontaneous)
	}
}
