package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spikeband/spikeband/pkg/builder"
)

func newProcessCommand(configFlag *string) *cobra.Command {
	var tetrode int
	var eventsPath string
	var spikesPath string
	var plot bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the full pipeline for one tetrode",
		Long: "Load the tetrode's wideband channels, partition the spike timestamps into " +
			"tagged and spontaneous sets, extract baseline-corrected cutouts, align the " +
			"tagged set and optionally render figures and export Parquet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}

			events, err := readTimestamps(eventsPath)
			if err != nil {
				return err
			}
			spikes, err := readTimestamps(spikesPath)
			if err != nil {
				return err
			}

			logger := newLoggerFromConfig(&cfg)

			classifierOptions := []builder.Option[builder.Classifier]{
				builder.ClassifierWithLogger(logger),
				builder.ClassifierWithWindow(cfg.Classify.Window),
			}
			if cfg.Classify.SortedCheck {
				classifierOptions = append(classifierOptions, builder.ClassifierWithSortedCheck())
			}

			sessionOptions := []builder.Option[builder.Session]{
				builder.SessionWithLogger(logger),
				builder.SessionWithLoader(newLoaderFromConfig(&cfg, logger)),
				builder.SessionWithClassifier(builder.NewClassifier(classifierOptions...)),
				builder.SessionWithExtractor(builder.NewExtractor(
					builder.ExtractorWithLogger(logger),
					builder.ExtractorWithNumPre(cfg.Cutout.NumPre),
					builder.ExtractorWithCutoutLength(cfg.Cutout.Length),
				)),
				builder.SessionWithBaselineRemover(builder.NewBaselineRemover(
					builder.BaselineRemoverWithLogger(logger),
				)),
				builder.SessionWithAligner(builder.NewAligner(
					builder.AlignerWithLogger(logger),
					builder.AlignerWithSearchRadius(cfg.Align.SearchRadius),
					builder.AlignerWithMaxConcurrency(cfg.Align.MaxConcurrency),
				)),
			}

			if cfg.Spectral.Enabled {
				sessionOptions = append(sessionOptions, builder.SessionWithSpectralMeter(builder.NewSpectralMeter(
					builder.SpectralMeterWithLogger(logger),
					builder.SpectralMeterWithMainsFrequency(cfg.Spectral.MainsFrequency),
					builder.SpectralMeterWithSNRThreshold(cfg.Spectral.SNRThreshold),
				)))
			}

			if plot {
				if err := os.MkdirAll(cfg.Output.PlotDir, 0o755); err != nil {
					return fmt.Errorf("create plot dir: %w", err)
				}
				sessionOptions = append(sessionOptions,
					builder.SessionWithPresenter(builder.NewPresenter(
						builder.PresenterWithLogger(logger),
						builder.PresenterWithMaxPlot(cfg.Output.MaxPlot),
						builder.PresenterWithNumPre(cfg.Cutout.NumPre),
						builder.PresenterWithSamplingFreq(cfg.Recording.SamplingRate),
					)),
					builder.SessionWithPlotDir(cfg.Output.PlotDir),
				)
			}

			if cfg.Output.ExportDir != "" {
				if err := os.MkdirAll(cfg.Output.ExportDir, 0o755); err != nil {
					return fmt.Errorf("create export dir: %w", err)
				}
				sessionOptions = append(sessionOptions,
					builder.SessionWithExporter(builder.NewParquetExporter(
						builder.ParquetExporterWithLogger(logger),
					)),
					builder.SessionWithExportDir(cfg.Output.ExportDir),
				)
			}

			session := builder.NewSession(sessionOptions...)
			tagged, spontaneous, err := session.ProcessTaggedRecording(cmd.Context(), tetrode, events, spikes, plot)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tetrode %d: %d tagged, %d spontaneous waveforms\n",
				tetrode, len(tagged), len(spontaneous))
			return nil
		},
	}

	cmd.Flags().IntVarP(&tetrode, "tetrode", "t", 1, "1-based tetrode number to process")
	cmd.Flags().StringVar(&eventsPath, "events", "", "Text file of event timestamps in seconds, one per line")
	cmd.Flags().StringVar(&spikesPath, "spikes", "", "Text file of spike timestamps in seconds, one per line")
	cmd.Flags().BoolVar(&plot, "plot", false, "Render stacked per-electrode figures")
	cmd.MarkFlagRequired("events")
	cmd.MarkFlagRequired("spikes")

	return cmd
}
