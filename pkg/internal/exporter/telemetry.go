package exporter

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (e *ParquetExporter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := e.snapshotLoggers()
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

func (e *ParquetExporter) snapshotLoggers() []types.Logger {
	e.loggersLock.Lock()
	loggers := append([]types.Logger(nil), e.loggers...)
	e.loggersLock.Unlock()
	return loggers
}

func (e *ParquetExporter) snapshotSensors() []types.Sensor {
	e.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), e.sensors...)
	e.sensorLock.Unlock()
	return sensors
}

func (e *ParquetExporter) snapshotMetadata() types.ComponentMetadata {
	e.metadataLock.Lock()
	metadata := e.componentMetadata
	e.metadataLock.Unlock()
	return metadata
}

func (e *ParquetExporter) notifyExportComplete(path string, rowCount int) {
	metadata := e.snapshotMetadata()
	for _, sensor := range e.snapshotSensors() {
		sensor.InvokeOnExportComplete(metadata, path, rowCount)
	}
}
