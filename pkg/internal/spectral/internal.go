package spectral

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"github.com/spikeband/spikeband/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// analyzeChannel computes the one-sided power spectrum of a bounded,
// mean-removed, Hann-windowed segment of one channel trace.
func (m *Meter) analyzeChannel(trace []float64, samplingRate float64) types.ChannelSpectrum {
	n := m.segmentLen
	if n > len(trace) {
		n = len(trace)
	}

	segment := make([]float64, n)
	copy(segment, trace[:n])
	floats.AddConst(-stat.Mean(segment, nil), segment)
	applyHann(segment)

	coeffs := fft.FFTReal(segment)
	bins := n/2 + 1
	power := make([]float64, bins)
	for i := 0; i < bins; i++ {
		power[i] = math.Pow(cmplx.Abs(coeffs[i]), 2)
	}

	binWidth := samplingRate / float64(n)
	spectrum := types.ChannelSpectrum{
		TotalPower: floats.Sum(power[1:]),
	}
	if bins > 1 {
		dominant := floats.MaxIdx(power[1:]) + 1
		spectrum.DominantFreq = float64(dominant) * binWidth
	}

	spectrum.Peaks = topPeaks(power, binWidth, m.maxPeaks)
	spectrum.MainsPower, spectrum.MainsSNR = m.mainsContamination(power, binWidth)

	return spectrum
}

// applyHann multiplies the segment by a Hann window in place.
func applyHann(segment []float64) {
	n := len(segment)
	if n < 2 {
		return
	}
	for i := range segment {
		segment[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
}

// topPeaks returns the strongest local maxima of the power spectrum,
// descending by power, excluding the DC bin.
func topPeaks(power []float64, binWidth float64, max int) []types.Peak {
	var peaks []types.Peak
	for i := 1; i+1 < len(power); i++ {
		if power[i] > power[i-1] && power[i] >= power[i+1] {
			peaks = append(peaks, types.Peak{
				Freq:  float64(i) * binWidth,
				Power: power[i],
			})
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Power > peaks[j].Power })
	if len(peaks) > max {
		peaks = peaks[:max]
	}
	return peaks
}

// mainsContamination sums power in the bins covering the mains frequency and
// relates it to the mean broadband bin power.
func (m *Meter) mainsContamination(power []float64, binWidth float64) (mainsPower, snr float64) {
	if binWidth <= 0 || len(power) < 3 {
		return 0, 0
	}

	center := int(math.Round(m.mainsFreq / binWidth))
	if center < 1 || center >= len(power) {
		return 0, 0
	}

	lo, hi := center-1, center+1
	if lo < 1 {
		lo = 1
	}
	if hi >= len(power) {
		hi = len(power) - 1
	}
	for i := lo; i <= hi; i++ {
		mainsPower += power[i]
	}

	broadband := floats.Sum(power[1:]) - mainsPower
	bins := len(power) - 1 - (hi - lo + 1)
	if bins <= 0 || broadband <= 0 {
		return mainsPower, 0
	}
	meanBin := broadband / float64(bins)
	if meanBin > 0 {
		snr = (mainsPower / float64(hi-lo+1)) / meanBin
	}
	return mainsPower, snr
}
