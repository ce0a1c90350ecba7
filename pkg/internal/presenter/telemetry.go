package presenter

import "github.com/spikeband/spikeband/pkg/internal/types"

// NotifyLoggers emits a log entry to all configured loggers.
func (p *Presenter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := p.snapshotLoggers()
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

func (p *Presenter) snapshotLoggers() []types.Logger {
	p.loggersLock.Lock()
	loggers := append([]types.Logger(nil), p.loggers...)
	p.loggersLock.Unlock()
	return loggers
}

func (p *Presenter) snapshotSensors() []types.Sensor {
	p.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), p.sensors...)
	p.sensorLock.Unlock()
	return sensors
}

func (p *Presenter) snapshotMetadata() types.ComponentMetadata {
	p.metadataLock.Lock()
	metadata := p.componentMetadata
	p.metadataLock.Unlock()
	return metadata
}

func (p *Presenter) notifyRenderComplete(path string, plotted int) {
	metadata := p.snapshotMetadata()
	for _, sensor := range p.snapshotSensors() {
		sensor.InvokeOnRenderComplete(metadata, path, plotted)
	}
}
