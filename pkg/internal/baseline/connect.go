package baseline

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for baseline remover events.
func (b *Remover) ConnectLogger(loggers ...types.Logger) {
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

	b.loggersLock.Lock()
	b.loggers = append(b.loggers, loggers...)
	b.loggersLock.Unlock()
}

// ConnectSensor registers sensors for baseline remover events.
func (b *Remover) ConnectSensor(sensors ...types.Sensor) {
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

	b.sensorLock.Lock()
	b.sensors = append(b.sensors, sensors...)
	b.sensorLock.Unlock()
}
