package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
)

// ErrNotConfigured indicates a required collaborator was not attached.
var ErrNotConfigured = errors.New("session: component not configured")

// ProcessTaggedRecording runs the pipeline for one tetrode. The returned
// tagged set is peak-aligned against the spontaneous population; the
// spontaneous set is returned after baseline removal only. When plot is true
// both sets are rendered to the configured plot directory.
func (s *Session) ProcessTaggedRecording(ctx context.Context, tetrode int, eventTimes types.EventSequence, spikeTimes types.SpikeSequence, plot bool) (types.WaveformSet, types.WaveformSet, error) {
	if err := s.checkConfigured(plot); err != nil {
		return nil, nil, err
	}

	s.NotifyLoggers(types.InfoLevel, "Session start",
		logschema.FieldComponent, s.componentMetadata.ID, logschema.FieldEvent, "ProcessTaggedRecording",
		logschema.FieldTetrode, tetrode, "events", len(eventTimes), "spikes", len(spikeTimes))
	s.notifySessionStart(tetrode)

	firstChannel, lastChannel := types.TetrodeChannelRange(tetrode)
	rec, err := s.loader.Load(ctx, firstChannel, lastChannel)
	if err != nil {
		return nil, nil, fmt.Errorf("session: load tetrode %d: %w", tetrode, err)
	}

	if s.spectral != nil {
		if _, err := s.spectral.Scan(rec); err != nil {
			s.NotifyLoggers(types.WarnLevel, "Spectral scan failed, continuing",
				logschema.FieldComponent, s.componentMetadata.ID, logschema.FieldEvent, "ProcessTaggedRecording",
				logschema.FieldTetrode, tetrode, logschema.FieldError, err)
		}
	}

	taggedTimes, spontaneousTimes, err := s.classifier.Partition(eventTimes, spikeTimes)
	if err != nil {
		return nil, nil, fmt.Errorf("session: classify tetrode %d: %w", tetrode, err)
	}

	taggedSet, err := s.extractor.Extract(rec, taggedTimes)
	if err != nil {
		return nil, nil, fmt.Errorf("session: extract tagged cutouts: %w", err)
	}
	spontaneousSet, err := s.extractor.Extract(rec, spontaneousTimes)
	if err != nil {
		return nil, nil, fmt.Errorf("session: extract spontaneous cutouts: %w", err)
	}

	taggedSet = s.baseline.Remove(taggedSet)
	spontaneousSet = s.baseline.Remove(spontaneousSet)

	s.NotifyLoggers(types.InfoLevel, "Aligning tagged spikes",
		logschema.FieldComponent, s.componentMetadata.ID, logschema.FieldEvent, "ProcessTaggedRecording",
		logschema.FieldTetrode, tetrode, "tagged", len(taggedSet), "spontaneous", len(spontaneousSet))
	taggedSet = s.aligner.Align(taggedSet, spontaneousSet)

	if plot {
		if err := s.renderSet(taggedSet, tetrode, "tagged"); err != nil {
			return nil, nil, err
		}
		if err := s.renderSet(spontaneousSet, tetrode, "spontaneous"); err != nil {
			return nil, nil, err
		}
	}

	if s.exporter != nil && s.exportDir != "" {
		path := filepath.Join(s.exportDir, fmt.Sprintf("tetrode_%d_waveforms.parquet", tetrode))
		if err := s.exporter.Export(path, taggedSet, spontaneousSet); err != nil {
			return nil, nil, fmt.Errorf("session: export tetrode %d: %w", tetrode, err)
		}
	}

	s.NotifyLoggers(types.InfoLevel, "Session complete",
		logschema.FieldComponent, s.componentMetadata.ID, logschema.FieldEvent, "ProcessTaggedRecording",
		logschema.FieldTetrode, tetrode, "tagged", len(taggedSet), "spontaneous", len(spontaneousSet))
	s.notifySessionComplete(tetrode, len(taggedSet), len(spontaneousSet))

	return taggedSet, spontaneousSet, nil
}

func (s *Session) renderSet(set types.WaveformSet, tetrode int, class string) error {
	if len(set) == 0 {
		s.NotifyLoggers(types.WarnLevel, "Nothing to plot",
			logschema.FieldComponent, s.componentMetadata.ID, logschema.FieldEvent, "ProcessTaggedRecording",
			logschema.FieldTetrode, tetrode, "class", class)
		return nil
	}
	title := fmt.Sprintf("Tetrode %d %s waveforms", tetrode, class)
	path := filepath.Join(s.plotDir, fmt.Sprintf("tetrode_%d_%s.png", tetrode, class))
	if err := s.presenter.Render(set, title, path); err != nil {
		return fmt.Errorf("session: render %s set: %w", class, err)
	}
	return nil
}

func (s *Session) checkConfigured(plot bool) error {
	switch {
	case s.loader == nil:
		return fmt.Errorf("%w: loader", ErrNotConfigured)
	case s.classifier == nil:
		return fmt.Errorf("%w: classifier", ErrNotConfigured)
	case s.extractor == nil:
		return fmt.Errorf("%w: extractor", ErrNotConfigured)
	case s.baseline == nil:
		return fmt.Errorf("%w: baseline remover", ErrNotConfigured)
	case s.aligner == nil:
		return fmt.Errorf("%w: aligner", ErrNotConfigured)
	case plot && s.presenter == nil:
		return fmt.Errorf("%w: presenter", ErrNotConfigured)
	}
	return nil
}
