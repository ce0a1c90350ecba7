package classifier

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (c *Classifier) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := c.snapshotLoggers()
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

func (c *Classifier) snapshotLoggers() []types.Logger {
	c.loggersLock.Lock()
	loggers := append([]types.Logger(nil), c.loggers...)
	c.loggersLock.Unlock()
	return loggers
}

func (c *Classifier) snapshotSensors() []types.Sensor {
	c.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), c.sensors...)
	c.sensorLock.Unlock()
	return sensors
}

func (c *Classifier) snapshotMetadata() types.ComponentMetadata {
	c.metadataLock.Lock()
	metadata := c.componentMetadata
	c.metadataLock.Unlock()
	return metadata
}

func (c *Classifier) notifyClassifyComplete(tagged, spontaneous int) {
	metadata := c.snapshotMetadata()
	for _, sensor := range c.snapshotSensors() {
		sensor.InvokeOnClassifyComplete(metadata, tagged, spontaneous)
	}
}
