package main

import (
	"context"
	"fmt"

	"github.com/spikeband/spikeband/pkg/builder"
)

func main() {
	ctx := context.Background()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	sensor := builder.NewSensor(
		builder.SensorWithOnSessionStartFunc(func(c builder.ComponentMetadata, tetrode int) {
			fmt.Printf("%v -> Processing tetrode %d\n", c, tetrode)
		}),
		builder.SensorWithOnSessionCompleteFunc(func(c builder.ComponentMetadata, tetrode, tagged, spontaneous int) {
			fmt.Printf("%v -> Tetrode %d done: %d tagged, %d spontaneous\n", c, tetrode, tagged, spontaneous)
		}),
	)

	session := builder.NewSession(
		builder.SessionWithLogger(logger),
		builder.SessionWithSensor(sensor),
		builder.SessionWithLoader(builder.NewDATLoader(
			builder.DATLoaderWithPath("recording.dat"),
			builder.DATLoaderWithChannelCount(16),
			builder.DATLoaderWithSamplingRate(32000),
		)),
		builder.SessionWithClassifier(builder.NewClassifier(
			builder.ClassifierWithWindow(0.01),
		)),
		builder.SessionWithExtractor(builder.NewExtractor()),
		builder.SessionWithBaselineRemover(builder.NewBaselineRemover()),
		builder.SessionWithAligner(builder.NewAligner(
			builder.AlignerWithMaxConcurrency(4),
		)),
		builder.SessionWithSpectralMeter(builder.NewSpectralMeter()),
		builder.SessionWithPresenter(builder.NewPresenter()),
		builder.SessionWithPlotDir("plots"),
		builder.SessionWithExporter(builder.NewParquetExporter()),
		builder.SessionWithExportDir("exports"),
	)

	events := builder.EventSequence{1.0, 2.0, 3.0}
	spikes := builder.SpikeSequence{1.002, 1.500, 2.004, 2.800, 3.007}

	tagged, spontaneous, err := session.ProcessTaggedRecording(ctx, 1, events, spikes, true)
	if err != nil {
		fmt.Printf("Pipeline failed: %v\n", err)
		return
	}

	fmt.Printf("Aligned %d tagged and %d spontaneous waveforms\n", len(tagged), len(spontaneous))
}
