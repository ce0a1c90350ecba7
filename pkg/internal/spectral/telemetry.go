package spectral

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (m *Meter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := m.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if lc, ok := logger.(levelChecker); ok {
			if !lc.IsLevelEnabled(level) {
				continue
			}
		} else if logger.GetLevel() > level {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (m *Meter) snapshotLoggers() []types.Logger {
	m.loggersLock.Lock()
	loggers := append([]types.Logger(nil), m.loggers...)
	m.loggersLock.Unlock()
	return loggers
}

func (m *Meter) snapshotSensors() []types.Sensor {
	m.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), m.sensors...)
	m.sensorLock.Unlock()
	return sensors
}

func (m *Meter) snapshotMetadata() types.ComponentMetadata {
	m.metadataLock.Lock()
	metadata := m.componentMetadata
	m.metadataLock.Unlock()
	return metadata
}

func (m *Meter) notifySpectralWarning(spectrum types.ChannelSpectrum) {
	metadata := m.snapshotMetadata()
	for _, sensor := range m.snapshotSensors() {
		sensor.InvokeOnSpectralWarning(metadata, spectrum)
	}
}
