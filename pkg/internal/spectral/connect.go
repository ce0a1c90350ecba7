package spectral

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for meter events.
func (m *Meter) ConnectLogger(loggers ...types.Logger) {
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

	m.loggersLock.Lock()
	m.loggers = append(m.loggers, loggers...)
	m.loggersLock.Unlock()
}

// ConnectSensor registers sensors for meter events.
func (m *Meter) ConnectSensor(sensors ...types.Sensor) {
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

	m.sensorLock.Lock()
	m.sensors = append(m.sensors, sensors...)
	m.sensorLock.Unlock()
}
