package classifier

import "github.com/spikeband/spikeband/pkg/internal/types"

// ConnectLogger registers loggers for classifier events.
func (c *Classifier) ConnectLogger(loggers ...types.Logger) {
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

	c.loggersLock.Lock()
	c.loggers = append(c.loggers, loggers...)
	c.loggersLock.Unlock()
}

// ConnectSensor registers sensors for classifier events.
func (c *Classifier) ConnectSensor(sensors ...types.Sensor) {
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

	c.sensorLock.Lock()
	c.sensors = append(c.sensors, sensors...)
	c.sensorLock.Unlock()
}
