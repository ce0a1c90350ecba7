package wideband

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (l *DATLoader) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := l.snapshotLoggers()
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

func (l *DATLoader) snapshotLoggers() []types.Logger {
	l.loggersLock.Lock()
	loggers := append([]types.Logger(nil), l.loggers...)
	l.loggersLock.Unlock()
	return loggers
}

func (l *DATLoader) snapshotSensors() []types.Sensor {
	l.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), l.sensors...)
	l.sensorLock.Unlock()
	return sensors
}

func (l *DATLoader) snapshotMetadata() types.ComponentMetadata {
	l.metadataLock.Lock()
	metadata := l.componentMetadata
	l.metadataLock.Unlock()
	return metadata
}
