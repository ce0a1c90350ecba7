package sensor_test

import (
	"sync/atomic"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/sensor"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func TestSensor_InvokesRegisteredCallbacks(t *testing.T) {
	var classified int32
	var aligned int32
	var warnings int32

	s := sensor.NewSensor(
		sensor.WithOnClassifyCompleteFunc(func(cm types.ComponentMetadata, tagged, spont int) {
			atomic.AddInt32(&classified, 1)
			if tagged != 2 || spont != 1 {
				t.Errorf("unexpected partition sizes %d/%d", tagged, spont)
			}
		}),
		sensor.WithOnWaveformAlignedFunc(func(cm types.ComponentMetadata, index, offset int) {
			atomic.AddInt32(&aligned, 1)
		}),
		sensor.WithOnSpectralWarningFunc(func(cm types.ComponentMetadata, spec types.ChannelSpectrum) {
			atomic.AddInt32(&warnings, 1)
			if spec.Channel != 3 {
				t.Errorf("unexpected channel %d", spec.Channel)
			}
		}),
	)

	cm := s.GetComponentMetadata()
	s.InvokeOnClassifyComplete(cm, 2, 1)
	s.InvokeOnWaveformAligned(cm, 0, 3)
	s.InvokeOnWaveformAligned(cm, 1, -1)
	s.InvokeOnSpectralWarning(cm, types.ChannelSpectrum{Channel: 3, MainsSNR: 12})

	if got := atomic.LoadInt32(&classified); got != 1 {
		t.Errorf("expected 1 classify callback, got %d", got)
	}
	if got := atomic.LoadInt32(&aligned); got != 2 {
		t.Errorf("expected 2 align callbacks, got %d", got)
	}
	if got := atomic.LoadInt32(&warnings); got != 1 {
		t.Errorf("expected 1 warning callback, got %d", got)
	}
}

func TestSensor_MetadataDefaults(t *testing.T) {
	s := sensor.NewSensor()
	cm := s.GetComponentMetadata()
	if cm.Type != "SENSOR" {
		t.Errorf("expected SENSOR type, got %q", cm.Type)
	}
	if cm.ID == "" {
		t.Error("expected generated component ID")
	}

	s.SetComponentMetadata("tetrode-1-watch", "abc123")
	cm = s.GetComponentMetadata()
	if cm.Name != "tetrode-1-watch" || cm.ID != "abc123" || cm.Type != "SENSOR" {
		t.Errorf("unexpected metadata after update: %+v", cm)
	}
}

func TestSensor_InvokeWithoutCallbacksIsNoop(t *testing.T) {
	s := sensor.NewSensor()
	cm := s.GetComponentMetadata()
	s.InvokeOnSessionStart(cm, 1)
	s.InvokeOnSessionComplete(cm, 1, 0, 0)
	s.InvokeOnExportComplete(cm, "out.parquet", 0)
}
