package extractor

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for extractor events.
func (e *Extractor) ConnectLogger(loggers ...types.Logger) {
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

	e.loggersLock.Lock()
	e.loggers = append(e.loggers, loggers...)
	e.loggersLock.Unlock()
}

// ConnectSensor registers sensors for extractor events.
func (e *Extractor) ConnectSensor(sensors ...types.Sensor) {
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

	e.sensorLock.Lock()
	e.sensors = append(e.sensors, sensors...)
	e.sensorLock.Unlock()
}
