package aligner

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (a *Aligner) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := a.snapshotLoggers()
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

func (a *Aligner) snapshotLoggers() []types.Logger {
	a.loggersLock.Lock()
	loggers := append([]types.Logger(nil), a.loggers...)
	a.loggersLock.Unlock()
	return loggers
}

func (a *Aligner) snapshotSensors() []types.Sensor {
	a.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), a.sensors...)
	a.sensorLock.Unlock()
	return sensors
}

func (a *Aligner) snapshotMetadata() types.ComponentMetadata {
	a.metadataLock.Lock()
	metadata := a.componentMetadata
	a.metadataLock.Unlock()
	return metadata
}

func (a *Aligner) notifyWaveformAligned(index, offset int) {
	metadata := a.snapshotMetadata()
	for _, sensor := range a.snapshotSensors() {
		sensor.InvokeOnWaveformAligned(metadata, index, offset)
	}
}

func (a *Aligner) notifyAlignComplete(refIndex, count int) {
	metadata := a.snapshotMetadata()
	for _, sensor := range a.snapshotSensors() {
		sensor.InvokeOnAlignComplete(metadata, refIndex, count)
	}
}
