package utils_test

import (
	"reflect"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/utils"
)

func TestMap_ChannelExtraction(t *testing.T) {
	rows := [][]float64{{10, 20}, {11, 21}, {12, 22}}
	trace := utils.Map(rows, func(row []float64) float64 {
		return row[1]
	})

	expected := []float64{20, 21, 22}
	if !reflect.DeepEqual(trace, expected) {
		t.Errorf("Expected %v, got %v", expected, trace)
	}
}

func TestFilter(t *testing.T) {
	elems := []float64{0.95, 1.002, 1.008, 1.5}
	kept := utils.Filter(elems, func(v float64) bool {
		return v > 1
	})

	expected := []float64{1.002, 1.008, 1.5}
	if !reflect.DeepEqual(kept, expected) {
		t.Errorf("Expected %v, got %v", expected, kept)
	}
}

func TestFilter_Empty(t *testing.T) {
	kept := utils.Filter(nil, func(int) bool { return true })
	if len(kept) != 0 {
		t.Errorf("Expected empty result, got %v", kept)
	}
}

func TestGenerateUniqueHashDiffers(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()
	if a == b {
		t.Errorf("expected distinct hashes, got %s twice", a)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
