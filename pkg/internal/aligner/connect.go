package aligner

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for aligner events.
func (a *Aligner) ConnectLogger(loggers ...types.Logger) {
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

	a.loggersLock.Lock()
	a.loggers = append(a.loggers, loggers...)
	a.loggersLock.Unlock()
}

// ConnectSensor registers sensors for aligner events.
func (a *Aligner) ConnectSensor(sensors ...types.Sensor) {
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

	a.sensorLock.Lock()
	a.sensors = append(a.sensors, sensors...)
	a.sensorLock.Unlock()
}
