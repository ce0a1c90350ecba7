package wideband

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for loader events.
func (l *DATLoader) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	l.loggersLock.Lock()
	l.loggers = append(l.loggers, loggers...)
	l.loggersLock.Unlock()
}

// ConnectSensor registers sensors for loader events.
func (l *DATLoader) ConnectSensor(sensors ...types.Sensor) {
	if len(sensors) == 0 {
		return
	}

	n := 0
	for _, s := range sensors {
		if s != nil {
			sensors[n] = s
			n++
		}
	}
	if n == 0 {
		return
	}
	sensors = sensors[:n]

	l.sensorLock.Lock()
	l.sensors = append(l.sensors, sensors...)
	l.sensorLock.Unlock()
}
