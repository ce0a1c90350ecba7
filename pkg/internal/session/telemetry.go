package session

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (s *Session) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := s.snapshotLoggers()
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

func (s *Session) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()
	return loggers
}

func (s *Session) snapshotSensors() []types.Sensor {
	s.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), s.sensors...)
	s.sensorLock.Unlock()
	return sensors
}

func (s *Session) snapshotMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	metadata := s.componentMetadata
	s.metadataLock.Unlock()
	return metadata
}

func (s *Session) notifySessionStart(tetrode int) {
	metadata := s.snapshotMetadata()
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnSessionStart(metadata, tetrode)
	}
}

func (s *Session) notifySessionComplete(tetrode, taggedCount, spontaneousCount int) {
	metadata := s.snapshotMetadata()
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnSessionComplete(metadata, tetrode, taggedCount, spontaneousCount)
	}
}
