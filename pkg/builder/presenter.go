package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/presenter"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// PlotStyle carries the cosmetic configuration for rendered figures.
type PlotStyle = types.PlotStyle

// DefaultPlotStyle returns the styling applied when none is configured.
func DefaultPlotStyle() PlotStyle {
	return presenter.DefaultStyle()
}

func NewPresenter(options ...types.Option[types.Presenter]) types.Presenter {
	return presenter.NewPresenter(options...)
}

// PresenterWithLogger adds loggers to the Presenter.
func PresenterWithLogger(logger ...types.Logger) types.Option[types.Presenter] {
	return presenter.WithLogger(logger...)
}

// PresenterWithSensor adds sensors to the Presenter.
func PresenterWithSensor(sensor ...types.Sensor) types.Option[types.Presenter] {
	return presenter.WithSensor(sensor...)
}

// PresenterWithMaxPlot caps the number of cutouts drawn per figure.
func PresenterWithMaxPlot(max int) types.Option[types.Presenter] {
	return presenter.WithMaxPlot(max)
}

// PresenterWithNumPre sets the pre-spike sample count used for the time axis.
func PresenterWithNumPre(numPre int) types.Option[types.Presenter] {
	return presenter.WithNumPre(numPre)
}

// PresenterWithSamplingFreq sets the sampling frequency used for the time axis.
func PresenterWithSamplingFreq(freq float64) types.Option[types.Presenter] {
	return presenter.WithSamplingFreq(freq)
}

// PresenterWithStyle overrides the figure styling.
func PresenterWithStyle(style PlotStyle) types.Option[types.Presenter] {
	return presenter.WithStyle(style)
}
