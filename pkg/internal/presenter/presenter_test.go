package presenter_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/presenter"
	"github.com/spikeband/spikeband/pkg/internal/sensor"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func smallSet(count, length, channels int) types.WaveformSet {
	set := make(types.WaveformSet, count)
	for i := range set {
		w := types.NewWaveform(length, channels)
		for s := range w.Samples {
			for ch := range w.Samples[s] {
				w.Samples[s][ch] = 100 * math.Sin(float64(s+i)/3)
			}
		}
		set[i] = w
	}
	return set
}

func TestTimeAxis_SpikeSampleAtZero(t *testing.T) {
	p := presenter.NewPresenter(
		presenter.WithNumPre(9),
		presenter.WithSamplingFreq(32000),
	).(*presenter.Presenter)

	axis := p.TimeAxis(32)
	if len(axis) != 32 {
		t.Fatalf("expected 32 axis points, got %d", len(axis))
	}

	ts := 1.0 / 32000
	if math.Abs(axis[0]+9*ts) > 1e-15 {
		t.Errorf("axis should start at -numPre/fs, got %v", axis[0])
	}
	if axis[9] != 0 {
		t.Errorf("spike sample should sit at zero, got %v", axis[9])
	}
	if math.Abs(axis[31]-(32-9-1)*ts) > 1e-15 {
		t.Errorf("axis end wrong: %v", axis[31])
	}
	if math.Abs((axis[1]-axis[0])-ts) > 1e-15 {
		t.Errorf("axis step should be 1/fs, got %v", axis[1]-axis[0])
	}
}

func TestRender_WritesFigureAndCapsCount(t *testing.T) {
	var plotted int64
	s := sensor.NewSensor(
		sensor.WithOnRenderCompleteFunc(func(cm types.ComponentMetadata, path string, n int) {
			atomic.StoreInt64(&plotted, int64(n))
		}),
	)

	p := presenter.NewPresenter(
		presenter.WithSensor(s),
		presenter.WithMaxPlot(3),
		presenter.WithNumPre(9),
		presenter.WithSamplingFreq(32000),
	)

	path := filepath.Join(t.TempDir(), "tagged.png")
	if err := p.Render(smallSet(10, 32, 4), "Tagged waveforms", path); err != nil {
		t.Fatalf("render: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("figure file is empty")
	}

	// Only the first maxPlot cutouts are drawn.
	if atomic.LoadInt64(&plotted) != 3 {
		t.Errorf("expected 3 plotted cutouts, got %d", plotted)
	}
}

func TestRender_FewerThanCap(t *testing.T) {
	var plotted int64
	s := sensor.NewSensor(
		sensor.WithOnRenderCompleteFunc(func(cm types.ComponentMetadata, path string, n int) {
			atomic.StoreInt64(&plotted, int64(n))
		}),
	)

	p := presenter.NewPresenter(presenter.WithSensor(s))
	path := filepath.Join(t.TempDir(), "spont.png")
	if err := p.Render(smallSet(2, 16, 4), "Spontaneous waveforms", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	if atomic.LoadInt64(&plotted) != 2 {
		t.Errorf("expected 2 plotted cutouts, got %d", plotted)
	}
}

func TestRender_EmptySet(t *testing.T) {
	p := presenter.NewPresenter()
	err := p.Render(nil, "empty", filepath.Join(t.TempDir(), "empty.png"))
	if !errors.Is(err, presenter.ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestPresenterDefaults(t *testing.T) {
	p := presenter.NewPresenter()
	if p.GetMaxPlot() != 100 {
		t.Errorf("expected default cap 100, got %d", p.GetMaxPlot())
	}
}
