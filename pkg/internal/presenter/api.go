package presenter

import (
	"errors"
	"fmt"
	"os"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrEmptySet is returned when there is nothing to draw.
var ErrEmptySet = errors.New("waveform set is empty")

// Render draws the first min(len(set), maxPlot) waveforms, in existing order,
// as one stacked subplot row per channel and writes the figure to path as PNG.
// The horizontal axis is shared across rows and displayed in milliseconds with
// the spike sample at zero.
func (p *Presenter) Render(set types.WaveformSet, title, path string) error {
	if len(set) == 0 {
		return fmt.Errorf("render %q: %w", title, ErrEmptySet)
	}

	count := len(set)
	if count > p.maxPlot {
		count = p.maxPlot
	}
	channels := set[0].Channels()
	times := p.TimeAxis(set[0].Len())

	plots := make([][]*plot.Plot, channels)
	for ch := 0; ch < channels; ch++ {
		row := plot.New()
		if ch == 0 {
			row.Title.Text = title
			row.Title.TextStyle.Font.Size = vg.Points(p.style.TitleSize)
		}
		if ch == channels-1 {
			row.X.Label.Text = "Time (ms)"
		}

		for i := 0; i < count; i++ {
			if err := p.addCutoutLine(row, times, set[i], ch); err != nil {
				return fmt.Errorf("render %q: %w", title, err)
			}
		}
		plots[ch] = []*plot.Plot{row}
	}

	img := vgimg.New(vg.Length(p.style.WidthInches)*vg.Inch, vg.Length(p.style.HeightInches)*vg.Inch)
	canvases := plot.Align(plots, draw.Tiles{Rows: channels, Cols: 1}, draw.New(img))
	for ch := 0; ch < channels; ch++ {
		plots[ch][0].Draw(canvases[ch][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}

	p.NotifyLoggers(types.InfoLevel, "figure rendered",
		logschema.FieldComponent, p.componentMetadata.ID, logschema.FieldEvent, "Render",
		"title", title, "path", path, "plotted", count)
	p.notifyRenderComplete(path, count)

	return nil
}

// TimeAxis returns the cutout time axis in seconds: length points starting at
// -numPre/samplingFreq with a step of 1/samplingFreq, so index numPre is zero.
func (p *Presenter) TimeAxis(length int) []float64 {
	ts := 1 / p.samplingFreq
	axis := make([]float64, length)
	for i := range axis {
		axis[i] = float64(i-p.numPre) * ts
	}
	return axis
}

// GetMaxPlot returns the cap on the number of cutouts drawn per figure.
func (p *Presenter) GetMaxPlot() int {
	return p.maxPlot
}
