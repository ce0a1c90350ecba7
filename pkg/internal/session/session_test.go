package session_test

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/spikeband/spikeband/pkg/internal/aligner"
	"github.com/spikeband/spikeband/pkg/internal/baseline"
	"github.com/spikeband/spikeband/pkg/internal/classifier"
	"github.com/spikeband/spikeband/pkg/internal/exporter"
	"github.com/spikeband/spikeband/pkg/internal/extractor"
	"github.com/spikeband/spikeband/pkg/internal/presenter"
	"github.com/spikeband/spikeband/pkg/internal/sensor"
	"github.com/spikeband/spikeband/pkg/internal/session"
	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/wideband"
)

const (
	testChannels     = 8
	testFrames       = 2000
	testSamplingRate = 1000.0
)

// writeSpikeDAT writes an interleaved int16 .dat file with a flat per-channel
// baseline and a sharp amplitude bump at each spike frame.
func writeSpikeDAT(t *testing.T, spikeFrames []int) string {
	t.Helper()
	buf := make([]byte, 2*testChannels*testFrames)
	for frame := 0; frame < testFrames; frame++ {
		for ch := 0; ch < testChannels; ch++ {
			v := int16(100 * (ch + 1))
			for _, sf := range spikeFrames {
				if frame == sf {
					v += 2000
				}
			}
			binary.LittleEndian.PutUint16(buf[2*(frame*testChannels+ch):], uint16(v))
		}
	}
	path := filepath.Join(t.TempDir(), "recording.dat")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write dat file: %v", err)
	}
	return path
}

func newTestSession(t *testing.T, datPath string, extra ...types.Option[types.Session]) types.Session {
	t.Helper()
	loader := wideband.NewDATLoader(
		wideband.WithPath(datPath),
		wideband.WithChannelCount(testChannels),
		wideband.WithSamplingRate(testSamplingRate),
	)
	options := append([]types.Option[types.Session]{
		session.WithLoader(loader),
		session.WithClassifier(classifier.NewClassifier()),
		session.WithExtractor(extractor.NewExtractor()),
		session.WithBaselineRemover(baseline.NewRemover()),
		session.WithAligner(aligner.NewAligner()),
	}, extra...)
	return session.NewSession(options...)
}

func TestProcessTaggedRecording_Partition(t *testing.T) {
	// Spike at 0.505 s falls 5 ms after the event at 0.5 s; the one at 1.2 s
	// has no preceding event within the window.
	path := writeSpikeDAT(t, []int{505, 1200})
	s := newTestSession(t, path)

	tagged, spontaneous, err := s.ProcessTaggedRecording(context.Background(), 2,
		[]float64{0.5}, []float64{0.505, 1.2}, false)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if len(tagged) != 1 || len(spontaneous) != 1 {
		t.Fatalf("expected 1 tagged and 1 spontaneous cutout, got %d and %d", len(tagged), len(spontaneous))
	}
	for _, w := range []types.Waveform{tagged[0], spontaneous[0]} {
		if w.Len() != 32 || w.Channels() != types.ChannelsPerTetrode {
			t.Fatalf("expected 32x4 cutouts, got %dx%d", w.Len(), w.Channels())
		}
	}

	// The bump sits numPre samples into each cutout and alignment must keep
	// it there: both populations peak at the same index.
	for name, w := range map[string]types.Waveform{"tagged": tagged[0], "spontaneous": spontaneous[0]} {
		peak, peakAbs := 0, 0.0
		for i := 0; i < w.Len(); i++ {
			if a := math.Abs(w.Samples[i][0]); a > peakAbs {
				peak, peakAbs = i, a
			}
		}
		if peak != 9 {
			t.Fatalf("%s cutout peak at sample %d, expected 9", name, peak)
		}
	}
}

func TestProcessTaggedRecording_Plots(t *testing.T) {
	path := writeSpikeDAT(t, []int{505, 1200})
	plotDir := t.TempDir()
	s := newTestSession(t, path,
		session.WithPresenter(presenter.NewPresenter(
			presenter.WithNumPre(9),
			presenter.WithSamplingFreq(testSamplingRate),
		)),
		session.WithPlotDir(plotDir),
	)

	if _, _, err := s.ProcessTaggedRecording(context.Background(), 2,
		[]float64{0.5}, []float64{0.505, 1.2}, true); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	for _, name := range []string{"tetrode_2_tagged.png", "tetrode_2_spontaneous.png"} {
		info, err := os.Stat(filepath.Join(plotDir, name))
		if err != nil {
			t.Fatalf("expected figure %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("figure %s is empty", name)
		}
	}
}

func TestProcessTaggedRecording_Export(t *testing.T) {
	path := writeSpikeDAT(t, []int{505, 1200})
	exportDir := t.TempDir()
	s := newTestSession(t, path,
		session.WithExporter(exporter.NewParquetExporter()),
		session.WithExportDir(exportDir),
	)

	if _, _, err := s.ProcessTaggedRecording(context.Background(), 2,
		[]float64{0.5}, []float64{0.505, 1.2}, false); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	rows, err := parquet.ReadFile[exporter.Row](filepath.Join(exportDir, "tetrode_2_waveforms.parquet"))
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if len(rows) != 2*types.ChannelsPerTetrode {
		t.Fatalf("expected %d exported rows, got %d", 2*types.ChannelsPerTetrode, len(rows))
	}
}

func TestProcessTaggedRecording_SensorNotifications(t *testing.T) {
	var startTetrode, completeTagged, completeSpontaneous int64
	sn := sensor.NewSensor(
		sensor.WithOnSessionStartFunc(func(cm types.ComponentMetadata, tetrode int) {
			atomic.StoreInt64(&startTetrode, int64(tetrode))
		}),
		sensor.WithOnSessionCompleteFunc(func(cm types.ComponentMetadata, tetrode, tagged, spontaneous int) {
			atomic.StoreInt64(&completeTagged, int64(tagged))
			atomic.StoreInt64(&completeSpontaneous, int64(spontaneous))
		}),
	)

	path := writeSpikeDAT(t, []int{505, 1200})
	s := newTestSession(t, path, session.WithSensor(sn))
	if _, _, err := s.ProcessTaggedRecording(context.Background(), 2,
		[]float64{0.5}, []float64{0.505, 1.2}, false); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if atomic.LoadInt64(&startTetrode) != 2 {
		t.Fatalf("expected session start for tetrode 2, got %d", atomic.LoadInt64(&startTetrode))
	}
	if atomic.LoadInt64(&completeTagged) != 1 || atomic.LoadInt64(&completeSpontaneous) != 1 {
		t.Fatalf("expected completion counts 1/1, got %d/%d",
			atomic.LoadInt64(&completeTagged), atomic.LoadInt64(&completeSpontaneous))
	}
}

func TestProcessTaggedRecording_MissingCollaborators(t *testing.T) {
	s := session.NewSession()
	if _, _, err := s.ProcessTaggedRecording(context.Background(), 1, nil, nil, false); !errors.Is(err, session.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	path := writeSpikeDAT(t, nil)
	withoutPresenter := newTestSession(t, path)
	if _, _, err := withoutPresenter.ProcessTaggedRecording(context.Background(), 1, nil, nil, true); !errors.Is(err, session.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured when plotting without a presenter, got %v", err)
	}
}

func TestProcessTaggedRecording_LoadError(t *testing.T) {
	s := newTestSession(t, filepath.Join(t.TempDir(), "missing.dat"))
	if _, _, err := s.ProcessTaggedRecording(context.Background(), 1, nil, nil, false); err == nil {
		t.Fatalf("expected load error, got nil")
	}
}
