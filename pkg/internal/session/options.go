package session

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger attaches loggers to the session.
func WithLogger(logger ...types.Logger) types.Option[types.Session] {
	return func(s types.Session) {
		s.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the session.
func WithSensor(sensor ...types.Sensor) types.Option[types.Session] {
	return func(s types.Session) {
		s.ConnectSensor(sensor...)
	}
}

// WithLoader sets the wideband loader supplying raw channel traces.
func WithLoader(loader types.WidebandLoader) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).loader = loader
	}
}

// WithClassifier sets the spike classifier.
func WithClassifier(classifier types.Classifier) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).classifier = classifier
	}
}

// WithExtractor sets the cutout extractor.
func WithExtractor(extractor types.Extractor) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).extractor = extractor
	}
}

// WithBaselineRemover sets the DC baseline remover.
func WithBaselineRemover(remover types.BaselineRemover) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).baseline = remover
	}
}

// WithAligner sets the peak aligner applied to the tagged set.
func WithAligner(aligner types.Aligner) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).aligner = aligner
	}
}

// WithPresenter sets the presenter used when plotting is requested.
func WithPresenter(presenter types.Presenter) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).presenter = presenter
	}
}

// WithSpectralMeter sets the advisory spectral meter. Scan failures are
// logged and do not abort the pipeline.
func WithSpectralMeter(meter types.SpectralMeter) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).spectral = meter
	}
}

// WithExporter sets the waveform exporter. Export runs only when an export
// directory is also configured.
func WithExporter(exporter types.Exporter) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).exporter = exporter
	}
}

// WithPlotDir sets the directory rendered figures are written to.
func WithPlotDir(dir string) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).plotDir = dir
	}
}

// WithExportDir sets the directory exported Parquet files are written to.
func WithExportDir(dir string) types.Option[types.Session] {
	return func(s types.Session) {
		s.(*Session).exportDir = dir
	}
}
