package types

import "image/color"

// PlotStyle carries the cosmetic configuration for rendered figures. It is an
// explicit value passed to the presenter rather than process-wide styling state.
type PlotStyle struct {
	LineWidthPt  float64     // Stroke width of each overlaid cutout, in points.
	LineColor    color.Color // Stroke color of each overlaid cutout.
	WidthInches  float64     // Figure width.
	HeightInches float64     // Figure height.
	TitleSize    float64     // Suptitle font size, in points.
}

// Presenter lays out a bounded number of cutouts as stacked per-electrode line
// plots for visual inspection. The first min(len(set), maxPlot) waveforms are
// drawn in existing order; there is no shuffling or sampling.
type Presenter interface {
	// Render draws the set as one stacked subplot row per channel, every
	// selected cutout overlaid on its channel's row with a shared time axis,
	// and writes the figure to path.
	Render(set WaveformSet, title, path string) error

	// GetMaxPlot returns the cap on the number of cutouts drawn per figure.
	GetMaxPlot() int

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
