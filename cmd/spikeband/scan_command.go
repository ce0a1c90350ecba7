package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spikeband/spikeband/pkg/builder"
)

func newScanCommand(configFlag *string) *cobra.Command {
	var tetrode int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report spectral quality of a tetrode's channels",
		Long: "Compute a power spectrum per channel over the start of the recording and " +
			"report dominant frequencies and mains hum contamination.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}

			logger := newLoggerFromConfig(&cfg)
			loader := newLoaderFromConfig(&cfg, logger)

			first, last := builder.TetrodeChannelRange(tetrode)
			rec, err := loader.Load(cmd.Context(), first, last)
			if err != nil {
				return err
			}

			meter := builder.NewSpectralMeter(
				builder.SpectralMeterWithLogger(logger),
				builder.SpectralMeterWithMainsFrequency(cfg.Spectral.MainsFrequency),
				builder.SpectralMeterWithSNRThreshold(cfg.Spectral.SNRThreshold),
			)
			spectra, err := meter.Scan(rec)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHANNEL\tDOMINANT HZ\tMAINS SNR\tFLAGGED")
			for _, cs := range spectra {
				flagged := ""
				if cs.MainsSNR > cfg.Spectral.SNRThreshold {
					flagged = "yes"
				}
				fmt.Fprintf(w, "%d\t%.1f\t%.2f\t%s\n", cs.Channel, cs.DominantFreq, cs.MainsSNR, flagged)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&tetrode, "tetrode", "t", 1, "1-based tetrode number to scan")

	return cmd
}
