package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/session"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func NewSession(options ...types.Option[types.Session]) types.Session {
	return session.NewSession(options...)
}

// SessionWithLogger adds loggers to the Session.
func SessionWithLogger(logger ...types.Logger) types.Option[types.Session] {
	return session.WithLogger(logger...)
}

// SessionWithSensor adds sensors to the Session.
func SessionWithSensor(sensor ...types.Sensor) types.Option[types.Session] {
	return session.WithSensor(sensor...)
}

// SessionWithLoader sets the wideband loader.
func SessionWithLoader(loader types.WidebandLoader) types.Option[types.Session] {
	return session.WithLoader(loader)
}

// SessionWithClassifier sets the spike classifier.
func SessionWithClassifier(classifier types.Classifier) types.Option[types.Session] {
	return session.WithClassifier(classifier)
}

// SessionWithExtractor sets the cutout extractor.
func SessionWithExtractor(extractor types.Extractor) types.Option[types.Session] {
	return session.WithExtractor(extractor)
}

// SessionWithBaselineRemover sets the DC baseline remover.
func SessionWithBaselineRemover(remover types.BaselineRemover) types.Option[types.Session] {
	return session.WithBaselineRemover(remover)
}

// SessionWithAligner sets the peak aligner.
func SessionWithAligner(aligner types.Aligner) types.Option[types.Session] {
	return session.WithAligner(aligner)
}

// SessionWithPresenter sets the presenter used when plotting is requested.
func SessionWithPresenter(presenter types.Presenter) types.Option[types.Session] {
	return session.WithPresenter(presenter)
}

// SessionWithSpectralMeter sets the advisory spectral meter.
func SessionWithSpectralMeter(meter types.SpectralMeter) types.Option[types.Session] {
	return session.WithSpectralMeter(meter)
}

// SessionWithExporter sets the waveform exporter.
func SessionWithExporter(exporter types.Exporter) types.Option[types.Session] {
	return session.WithExporter(exporter)
}

// SessionWithPlotDir sets the directory rendered figures are written to.
func SessionWithPlotDir(dir string) types.Option[types.Session] {
	return session.WithPlotDir(dir)
}

// SessionWithExportDir sets the directory exported Parquet files are written to.
func SessionWithExportDir(dir string) types.Option[types.Session] {
	return session.WithExportDir(dir)
}
