package baseline

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (b *Remover) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := b.snapshotLoggers()
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

func (b *Remover) snapshotLoggers() []types.Logger {
	b.loggersLock.Lock()
	loggers := append([]types.Logger(nil), b.loggers...)
	b.loggersLock.Unlock()
	return loggers
}

func (b *Remover) snapshotSensors() []types.Sensor {
	b.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), b.sensors...)
	b.sensorLock.Unlock()
	return sensors
}

func (b *Remover) snapshotMetadata() types.ComponentMetadata {
	b.metadataLock.Lock()
	metadata := b.componentMetadata
	b.metadataLock.Unlock()
	return metadata
}

func (b *Remover) notifyBaselineRemoved(means []float64) {
	metadata := b.snapshotMetadata()
	for _, sensor := range b.snapshotSensors() {
		sensor.InvokeOnBaselineRemoved(metadata, means)
	}
}
