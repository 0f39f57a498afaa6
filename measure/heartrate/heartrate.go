package heartrate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-acquire/dsp/core"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Search band defaults in Hz. The heart-rate band covers roughly
// 40-200 BPM; the respiration band covers 6-30 breaths per minute.
const (
	DefaultBandLowHz  = 0.67
	DefaultBandHighHz = 3.33

	RespirationBandLowHz  = 0.1
	RespirationBandHighHz = 0.5
)

// Estimate is a rate estimate in beats (or breaths) per minute with a
// unitless confidence measure. For spectral estimates the confidence is
// the dominant peak magnitude relative to the mean spectrum magnitude;
// for interval estimates it reflects the regularity of the intervals.
type Estimate struct {
	BPM        float64
	Confidence float64
}

// FromIntervals estimates a rate from peak sample indices, using the
// mean peak-to-peak interval. At least two peaks are required.
func FromIntervals(peaks []int, sampleRate float64) (Estimate, error) {
	if sampleRate <= 0 {
		return Estimate{}, fmt.Errorf("heartrate sample rate must be > 0: %f", sampleRate)
	}
	if len(peaks) < 2 {
		return Estimate{}, fmt.Errorf("heartrate needs at least 2 peaks: %d", len(peaks))
	}

	var total float64
	for i := 1; i < len(peaks); i++ {
		d := peaks[i] - peaks[i-1]
		if d <= 0 {
			return Estimate{}, fmt.Errorf("heartrate peaks must be strictly increasing")
		}
		total += float64(d)
	}
	meanInterval := total / float64(len(peaks)-1)

	// Interval spread relative to the mean drives the confidence.
	var sqDev float64
	for i := 1; i < len(peaks); i++ {
		d := float64(peaks[i]-peaks[i-1]) - meanInterval
		sqDev += d * d
	}
	spread := math.Sqrt(sqDev/float64(len(peaks)-1)) / meanInterval

	return Estimate{
		BPM:        sampleRate / meanInterval * 60,
		Confidence: core.Clamp(1-spread, 0, 1),
	}, nil
}

// Config holds spectral estimation parameters.
type Config struct {
	SampleRate float64
	// FFTSize is rounded up to a power of two; 0 sizes it from the
	// input length.
	FFTSize    int
	BandLowHz  float64
	BandHighHz float64
}

// Analyzer estimates the dominant rate in a frequency band from the
// magnitude spectrum of a windowed FFT.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer. Band limits default to the
// heart-rate band when both are zero; otherwise the lower edge must be
// positive and below the upper edge.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("heartrate sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.BandLowHz == 0 && cfg.BandHighHz == 0 {
		cfg.BandLowHz = DefaultBandLowHz
		cfg.BandHighHz = DefaultBandHighHz
	}
	if cfg.BandLowHz <= 0 || cfg.BandHighHz <= cfg.BandLowHz {
		return nil, fmt.Errorf("heartrate band invalid: [%f, %f]", cfg.BandLowHz, cfg.BandHighHz)
	}
	if cfg.BandHighHz > cfg.SampleRate/2 {
		return nil, fmt.Errorf("heartrate band exceeds Nyquist: %f > %f",
			cfg.BandHighHz, cfg.SampleRate/2)
	}
	return &Analyzer{cfg: cfg}, nil
}

// Estimate returns the dominant frequency in the configured band,
// expressed in beats per minute. The signal is Hann-windowed and
// zero-padded to the FFT size.
func (a *Analyzer) Estimate(signal []float64) (Estimate, error) {
	n := len(signal)
	if n < 4 {
		return Estimate{}, fmt.Errorf("heartrate signal too short: %d samples", n)
	}

	fftSize := a.cfg.FFTSize
	if fftSize < n {
		fftSize = n
	}
	fftSize = nextPowerOf2(fftSize)

	windowed := make([]float64, n)
	vecmath.MulBlock(windowed, signal, hann(n))

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Estimate{}, fmt.Errorf("heartrate fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Estimate{}, fmt.Errorf("heartrate fft: %w", err)
	}

	// Non-negative frequency bins only, normalized like a one-sided
	// amplitude spectrum.
	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	norm := 2 / float64(n)
	var sumMag float64
	for i := range mag {
		mag[i] *= norm
		sumMag += mag[i]
	}

	binHz := a.cfg.SampleRate / float64(fftSize)
	lowBin := int(math.Ceil(a.cfg.BandLowHz / binHz))
	if lowBin < 1 {
		// The DC bin carries the signal mean, never a rate.
		lowBin = 1
	}
	highBin := int(math.Floor(a.cfg.BandHighHz / binHz))
	if highBin > bins-1 {
		highBin = bins - 1
	}
	if lowBin > highBin {
		return Estimate{}, fmt.Errorf("heartrate band [%f, %f] Hz resolves to no bins at resolution %f Hz",
			a.cfg.BandLowHz, a.cfg.BandHighHz, binHz)
	}

	peakBin := lowBin
	for i := lowBin + 1; i <= highBin; i++ {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	meanMag := sumMag / float64(bins)
	var confidence float64
	if meanMag > 0 {
		confidence = mag[peakBin] / meanMag
	}

	return Estimate{
		BPM:        float64(peakBin) * binHz * 60,
		Confidence: confidence,
	}, nil
}

// hann returns symmetric Hann window coefficients.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
