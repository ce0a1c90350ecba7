package extractor

import (
	"errors"
	"fmt"
	"math"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
)

// ErrEmptyRecording is returned when the recording holds no channels or samples.
var ErrEmptyRecording = errors.New("recording holds no samples")

// Extract returns one (L, C) cutout per usable timestamp, in timestamp order,
// with the configured number of pre-spike samples ahead of each spike sample.
// Timestamps whose cutout window would extend past either end of the recording
// are skipped; the remaining cutouts still share an identical shape.
func (e *Extractor) Extract(rec *types.Recording, timestamps types.SpikeSequence) (types.WaveformSet, error) {
	if rec == nil || rec.Channels() == 0 || rec.Len() == 0 {
		return nil, fmt.Errorf("extract: %w", ErrEmptyRecording)
	}

	channels := rec.Channels()
	total := rec.Len()
	set := make(types.WaveformSet, 0, len(timestamps))
	skipped := 0

	for _, ts := range timestamps {
		start := int(math.Round(ts*rec.SamplingRate)) - e.numPre
		if start < 0 || start+e.cutoutLen > total {
			skipped++
			continue
		}

		w := types.NewWaveform(e.cutoutLen, channels)
		for s := 0; s < e.cutoutLen; s++ {
			for ch := 0; ch < channels; ch++ {
				w.Samples[s][ch] = rec.Samples[ch][start+s]
			}
		}
		set = append(set, w)
	}

	if skipped > 0 {
		e.NotifyLoggers(types.WarnLevel, "skipped timestamps outside recording",
			logschema.FieldComponent, e.componentMetadata.ID, logschema.FieldEvent, "Extract", "skipped", skipped)
	}
	e.NotifyLoggers(types.DebugLevel, "cutouts extracted",
		logschema.FieldComponent, e.componentMetadata.ID, logschema.FieldEvent, "Extract",
		"count", len(set), "length", e.cutoutLen, "channels", channels)
	e.notifyCutoutsExtracted(len(set), e.cutoutLen, channels)

	return set, nil
}

// GetNumPre returns the number of samples included before the spike sample.
func (e *Extractor) GetNumPre() int {
	return e.numPre
}

// GetCutoutLength returns the total sample count L of each cutout.
func (e *Extractor) GetCutoutLength() int {
	return e.cutoutLen
}
