package presenter

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for presenter events.
func (p *Presenter) ConnectLogger(loggers ...types.Logger) {
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

	p.loggersLock.Lock()
	p.loggers = append(p.loggers, loggers...)
	p.loggersLock.Unlock()
}

// ConnectSensor registers sensors for presenter events.
func (p *Presenter) ConnectSensor(sensors ...types.Sensor) {
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

	p.sensorLock.Lock()
	p.sensors = append(p.sensors, sensors...)
	p.sensorLock.Unlock()
}
