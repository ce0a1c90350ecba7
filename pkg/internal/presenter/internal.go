package presenter

import (
	"github.com/spikeband/spikeband/pkg/internal/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// addCutoutLine overlays one channel trace of one cutout onto a subplot row.
// Times are displayed in milliseconds, amplitudes in millivolts.
func (p *Presenter) addCutoutLine(row *plot.Plot, times []float64, w types.Waveform, channel int) error {
	pts := make(plotter.XYs, len(times))
	for s := range times {
		pts[s].X = times[s] * 1000
		pts[s].Y = w.Samples[s][channel] / 1000
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(p.style.LineWidthPt)
	line.LineStyle.Color = p.style.LineColor
	row.Add(line)
	return nil
}
