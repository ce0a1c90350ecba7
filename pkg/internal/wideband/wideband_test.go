package wideband_test

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/wideband"
)

// writeDAT writes an interleaved int16 .dat file where channel ch (0-based)
// sample s holds the value ch*1000 + s.
func writeDAT(t *testing.T, channels, frames int) string {
	t.Helper()
	buf := make([]byte, 2*channels*frames)
	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			off := 2 * (frame*channels + ch)
			binary.LittleEndian.PutUint16(buf[off:], uint16(int16(ch*1000+frame)))
		}
	}
	path := filepath.Join(t.TempDir(), "wideband.dat")
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatalf("write dat: %v", err)
	}
	return path
}

func TestLoad_DeinterleavesChannelRange(t *testing.T) {
	path := writeDAT(t, 16, 100)

	l := wideband.NewDATLoader(
		wideband.WithPath(path),
		wideband.WithChannelCount(16),
		wideband.WithSamplingRate(32000),
	)

	// Tetrode 2 covers channels 5-8.
	first, last := types.TetrodeChannelRange(2)
	rec, err := l.Load(context.Background(), first, last)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if rec.Channels() != 4 {
		t.Fatalf("expected 4 channels, got %d", rec.Channels())
	}
	if rec.Len() != 100 {
		t.Fatalf("expected 100 frames, got %d", rec.Len())
	}
	if rec.SamplingRate != 32000 {
		t.Errorf("sampling rate not carried: %v", rec.SamplingRate)
	}
	if rec.FirstChannel != 5 {
		t.Errorf("expected first channel 5, got %d", rec.FirstChannel)
	}

	// Channel 5 is 0-based channel 4 in the file: values 4000 + frame.
	if rec.Samples[0][0] != 4000 || rec.Samples[0][99] != 4099 {
		t.Errorf("channel 5 trace wrong: %v, %v", rec.Samples[0][0], rec.Samples[0][99])
	}
	if rec.Samples[3][50] != 7050 {
		t.Errorf("channel 8 trace wrong: %v", rec.Samples[3][50])
	}
}

func TestLoad_AppliesVoltScale(t *testing.T) {
	path := writeDAT(t, 4, 10)

	l := wideband.NewDATLoader(
		wideband.WithPath(path),
		wideband.WithChannelCount(4),
		wideband.WithVoltScale(0.5),
	)

	rec, err := l.Load(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Samples[1][3] != 0.5*1003 {
		t.Errorf("volt scale not applied: %v", rec.Samples[1][3])
	}
}

func TestLoad_RejectsBadChannelRange(t *testing.T) {
	l := wideband.NewDATLoader(wideband.WithChannelCount(8))

	cases := [][2]int{{0, 4}, {5, 4}, {6, 9}}
	for _, c := range cases {
		if _, err := l.Load(context.Background(), c[0], c[1]); !errors.Is(err, wideband.ErrChannelRange) {
			t.Errorf("range %v: expected ErrChannelRange, got %v", c, err)
		}
	}
}

func TestLoad_RejectsPartialFrame(t *testing.T) {
	path := writeDAT(t, 4, 10)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-3], 0644); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	l := wideband.NewDATLoader(wideband.WithPath(path), wideband.WithChannelCount(4))
	if _, err := l.Load(context.Background(), 1, 4); !errors.Is(err, wideband.ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	l := wideband.NewDATLoader(
		wideband.WithPath(filepath.Join(t.TempDir(), "absent.dat")),
		wideband.WithChannelCount(4),
	)
	if _, err := l.Load(context.Background(), 1, 4); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	path := writeDAT(t, 4, 10)
	l := wideband.NewDATLoader(wideband.WithPath(path), wideband.WithChannelCount(4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, 1, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTetrodeChannelRange(t *testing.T) {
	first, last := types.TetrodeChannelRange(1)
	if first != 1 || last != 4 {
		t.Errorf("tetrode 1: got %d-%d", first, last)
	}
	first, last = types.TetrodeChannelRange(3)
	if first != 9 || last != 12 {
		t.Errorf("tetrode 3: got %d-%d", first, last)
	}
}
