package wideband

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
)

var (
	// ErrChannelRange is returned when the requested channel range falls outside
	// the configured channel count or is not a valid 1-based inclusive range.
	ErrChannelRange = errors.New("requested channel range out of bounds")
	// ErrMalformedData is returned when the file size is not a whole number of
	// interleaved frames.
	ErrMalformedData = errors.New("dat file is not a whole number of frames")
)

// Load reads the requested 1-based inclusive channel range from the configured
// .dat file and returns the deinterleaved traces. The context is checked
// periodically while decoding so long reads can be abandoned.
func (l *DATLoader) Load(ctx context.Context, firstChannel, lastChannel int) (*types.Recording, error) {
	if firstChannel < 1 || lastChannel < firstChannel || lastChannel > l.channelCount {
		return nil, fmt.Errorf("load channels %d-%d of %d: %w",
			firstChannel, lastChannel, l.channelCount, ErrChannelRange)
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("load wideband: %w", err)
	}

	frameBytes := 2 * l.channelCount
	if len(data)%frameBytes != 0 {
		return nil, fmt.Errorf("load wideband %s: %w", l.path, ErrMalformedData)
	}
	frames := len(data) / frameBytes

	channels := lastChannel - firstChannel + 1
	rec := &types.Recording{
		Samples:      make([][]float64, channels),
		SamplingRate: l.samplingRate,
		FirstChannel: firstChannel,
	}
	for ch := range rec.Samples {
		rec.Samples[ch] = make([]float64, frames)
	}

	for frame := 0; frame < frames; frame++ {
		if frame%65536 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("load wideband: %w", err)
			}
		}
		base := frame * frameBytes
		for ch := 0; ch < channels; ch++ {
			off := base + 2*(firstChannel-1+ch)
			raw := int16(binary.LittleEndian.Uint16(data[off : off+2]))
			rec.Samples[ch][frame] = float64(raw) * l.voltScale
		}
	}

	l.NotifyLoggers(types.InfoLevel, "wideband loaded",
		logschema.FieldComponent, l.componentMetadata.ID, logschema.FieldEvent, "Load",
		"path", l.path, "firstChannel", firstChannel, "lastChannel", lastChannel,
		"frames", frames)

	return rec, nil
}

// GetSamplingRate returns the configured acquisition rate in Hz.
func (l *DATLoader) GetSamplingRate() float64 {
	return l.samplingRate
}

// GetChannelCount returns the number of interleaved channels per frame.
func (l *DATLoader) GetChannelCount() int {
	return l.channelCount
}
