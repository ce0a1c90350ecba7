package main

import (
	"context"
	"fmt"

	"github.com/spikeband/spikeband/pkg/builder"
)

func main() {
	ctx := context.Background()

	loader := builder.NewDATLoader(
		builder.DATLoaderWithPath("recording.dat"),
		builder.DATLoaderWithChannelCount(16),
		builder.DATLoaderWithSamplingRate(32000),
	)

	first, last := builder.TetrodeChannelRange(1)
	rec, err := loader.Load(ctx, first, last)
	if err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}

	sensor := builder.NewSensor(
		builder.SensorWithOnSpectralWarningFunc(func(c builder.ComponentMetadata, cs builder.ChannelSpectrum) {
			fmt.Printf("%v -> Mains hum on channel %d: SNR %.1f\n", c, cs.Channel, cs.MainsSNR)
		}),
	)

	meter := builder.NewSpectralMeter(
		builder.SpectralMeterWithLogger(builder.NewLogger(builder.LoggerWithLevel("info"))),
		builder.SpectralMeterWithSensor(sensor),
		builder.SpectralMeterWithMainsFrequency(60),
		builder.SpectralMeterWithSNRThreshold(10),
	)

	spectra, err := meter.Scan(rec)
	if err != nil {
		fmt.Printf("Scan failed: %v\n", err)
		return
	}

	for _, cs := range spectra {
		fmt.Printf("Channel %d: dominant %.1f Hz, mains SNR %.2f\n", cs.Channel, cs.DominantFreq, cs.MainsSNR)
	}
}
