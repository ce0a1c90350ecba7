package presenter

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to a Presenter.
func WithLogger(logger ...types.Logger) types.Option[types.Presenter] {
	return func(p types.Presenter) {
		p.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a Presenter.
func WithSensor(sensor ...types.Sensor) types.Option[types.Presenter] {
	return func(p types.Presenter) {
		p.ConnectSensor(sensor...)
	}
}

// WithMaxPlot caps the number of cutouts drawn per figure. Values below one
// are ignored.
func WithMaxPlot(max int) types.Option[types.Presenter] {
	return func(p types.Presenter) {
		if pr, ok := p.(*Presenter); ok && max > 0 {
			pr.maxPlot = max
		}
	}
}

// WithNumPre sets the pre-spike sample count used to place zero on the time
// axis. Negative values are ignored.
func WithNumPre(numPre int) types.Option[types.Presenter] {
	return func(p types.Presenter) {
		if pr, ok := p.(*Presenter); ok && numPre >= 0 {
			pr.numPre = numPre
		}
	}
}

// WithSamplingFreq sets the acquisition rate used to build the time axis.
// Non-positive values are ignored.
func WithSamplingFreq(freq float64) types.Option[types.Presenter] {
	return func(p types.Presenter) {
		if pr, ok := p.(*Presenter); ok && freq > 0 {
			pr.samplingFreq = freq
		}
	}
}

// WithStyle replaces the default figure styling.
func WithStyle(style types.PlotStyle) types.Option[types.Presenter] {
	return func(p types.Presenter) {
		if pr, ok := p.(*Presenter); ok {
			pr.style = style
		}
	}
}
