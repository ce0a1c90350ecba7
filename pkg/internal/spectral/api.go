package spectral

import (
	"errors"
	"fmt"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
)

// ErrEmptyRecording is returned when the recording holds no channels or samples.
var ErrEmptyRecording = errors.New("recording holds no samples")

// Scan computes a power spectrum for each channel of the recording over the
// configured segment length and summarizes dominant peaks and mains
// contamination. Channels whose mains SNR exceeds the configured threshold are
// reported to attached sensors and logged as warnings; Scan itself never fails
// on contaminated data, only on unusable input.
func (m *Meter) Scan(rec *types.Recording) ([]types.ChannelSpectrum, error) {
	if rec == nil || rec.Channels() == 0 || rec.Len() == 0 {
		return nil, fmt.Errorf("spectral scan: %w", ErrEmptyRecording)
	}
	if rec.SamplingRate <= 0 {
		return nil, fmt.Errorf("spectral scan: sampling rate %v invalid", rec.SamplingRate)
	}

	out := make([]types.ChannelSpectrum, rec.Channels())
	for ch, trace := range rec.Samples {
		spectrum := m.analyzeChannel(trace, rec.SamplingRate)
		spectrum.Channel = rec.FirstChannel + ch
		out[ch] = spectrum

		if spectrum.MainsSNR > m.snrThreshold {
			m.NotifyLoggers(types.WarnLevel, "mains hum detected on channel",
				logschema.FieldComponent, m.componentMetadata.ID, logschema.FieldEvent, "Scan",
				logschema.FieldChannel, spectrum.Channel, "mainsFreq", m.mainsFreq,
				"mainsSNR", spectrum.MainsSNR)
			m.notifySpectralWarning(spectrum)
		}
	}

	m.NotifyLoggers(types.DebugLevel, "spectral scan complete",
		logschema.FieldComponent, m.componentMetadata.ID, logschema.FieldEvent, "Scan",
		"channels", len(out))

	return out, nil
}

// GetMainsFrequency returns the line frequency checked for hum, in Hz.
func (m *Meter) GetMainsFrequency() float64 {
	return m.mainsFreq
}

// GetSNRThreshold returns the flagging threshold for mains contamination.
func (m *Meter) GetSNRThreshold() float64 {
	return m.snrThreshold
}
