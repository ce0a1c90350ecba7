package main

import (
	"fmt"

	"github.com/spikeband/spikeband/pkg/builder"
)

func main() {
	// Stimulation pulses at 1.0 s and 2.0 s, spikes detected around them.
	events := builder.EventSequence{1.0, 2.0}
	spikes := builder.SpikeSequence{0.950, 1.002, 1.008, 1.500, 2.004, 2.050}

	sensor := builder.NewSensor(
		builder.SensorWithOnClassifyCompleteFunc(func(c builder.ComponentMetadata, tagged, spontaneous int) {
			fmt.Printf("%v -> Classified %d tagged and %d spontaneous spikes\n", c, tagged, spontaneous)
		}),
	)

	classifier := builder.NewClassifier(
		builder.ClassifierWithLogger(builder.NewLogger(builder.LoggerWithLevel("debug"))),
		builder.ClassifierWithSensor(sensor),
		builder.ClassifierWithWindow(0.01),
		builder.ClassifierWithSortedCheck(),
	)

	tagged, spontaneous, err := classifier.Partition(events, spikes)
	if err != nil {
		fmt.Printf("Classification failed: %v\n", err)
		return
	}

	fmt.Printf("Tagged:      %v\n", tagged)
	fmt.Printf("Spontaneous: %v\n", spontaneous)
}
