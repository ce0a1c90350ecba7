// Package presenter renders waveform sets as stacked per-electrode line plots
// for visual inspection: one subplot row per channel, every selected cutout
// overlaid in a thin low-emphasis line, all rows sharing the same time axis.
// The time axis is built from the extractor's pre-spike sample count and the
// acquisition rate, so the spike sample sits at zero milliseconds.
package presenter

import (
	"image/color"
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// DefaultMaxPlot caps the number of cutouts drawn per figure.
const DefaultMaxPlot = 100

// DefaultStyle returns the figure styling applied when none is configured.
func DefaultStyle() types.PlotStyle {
	return types.PlotStyle{
		LineWidthPt:  0.5,
		LineColor:    color.Gray{Y: 128},
		WidthInches:  7,
		HeightInches: 10,
		TitleSize:    18,
	}
}

// Presenter draws stacked per-electrode figures of waveform sets.
type Presenter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	maxPlot      int
	numPre       int
	samplingFreq float64
	style        types.PlotStyle

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewPresenter creates a new Presenter configured with the provided options.
func NewPresenter(options ...types.Option[types.Presenter]) types.Presenter {
	p := &Presenter{
		componentMetadata: types.ComponentMetadata{
			Type: "PRESENTER",
			ID:   utils.GenerateUniqueHash(),
		},
		maxPlot:      DefaultMaxPlot,
		numPre:       9,
		samplingFreq: 32000,
		style:        DefaultStyle(),
		loggers:      make([]types.Logger, 0),
		sensors:      make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}
