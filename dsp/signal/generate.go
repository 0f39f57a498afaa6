package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-acquire/dsp/core"
)

// Generator creates deterministic simulated biosignals from a shared
// configuration. It stands in for the hardware ADC during development
// and testing.
type Generator struct {
	cfg            core.ProcessorConfig
	seed           int64
	noiseLevel     float64
	baselineWander float64
	powerline      float64
	powerlineHz    float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithNoiseLevel sets the additive noise amplitude for biosignals.
func WithNoiseLevel(level float64) Option {
	return func(g *Generator) {
		if level >= 0 {
			g.noiseLevel = level
		}
	}
}

// WithBaselineWander sets the amplitude of the slow 0.1 Hz baseline
// drift added to PPG signals. Zero disables it.
func WithBaselineWander(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 {
			g.baselineWander = amplitude
		}
	}
}

// WithPowerline sets the mains interference added to ECG signals: a
// sinusoid at freqHz with the given amplitude. Zero amplitude disables
// it.
func WithPowerline(amplitude, freqHz float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 && freqHz > 0 {
			g.powerline = amplitude
			g.powerlineHz = freqHz
		}
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:            core.ApplyProcessorOptions(coreOpts...),
		seed:           1,
		noiseLevel:     0.3,
		baselineWander: 0.2,
		powerline:      0.05,
		powerlineHz:    50,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// PPG generates a simulated photoplethysmogram: the heart-rate
// fundamental plus two decaying harmonics, Gaussian noise at the
// configured level, and optional slow baseline wander.
func (g *Generator) PPG(heartRateBPM float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ppg samples must be > 0: %d", samples)
	}
	if heartRateBPM <= 0 {
		return nil, fmt.Errorf("ppg heart rate must be > 0: %f", heartRateBPM)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("ppg sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	heartHz := heartRateBPM / 60
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)

	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		clean := math.Sin(2*math.Pi*heartHz*t) +
			0.5*math.Sin(2*math.Pi*2*heartHz*t) +
			0.25*math.Sin(2*math.Pi*3*heartHz*t)

		v := clean + g.noiseLevel*rng.NormFloat64()
		if g.baselineWander > 0 {
			v += g.baselineWander * math.Sin(2*math.Pi*0.1*t)
		}
		out[i] = v
	}
	return out, nil
}

// ECG generates a simulated electrocardiogram. Each cardiac cycle is a
// piecewise P wave, QRS complex, and T wave, with Gaussian noise at the
// configured level and mains interference at the configured powerline
// amplitude.
func (g *Generator) ECG(heartRateBPM float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ecg samples must be > 0: %d", samples)
	}
	if heartRateBPM <= 0 {
		return nil, fmt.Errorf("ecg heart rate must be > 0: %f", heartRateBPM)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("ecg sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	heartHz := heartRateBPM / 60
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)

	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		beat := t * heartHz
		phase := beat - math.Floor(beat)

		v := ecgCycle(phase)
		v += g.noiseLevel * rng.NormFloat64()
		if g.powerline > 0 {
			v += g.powerline * math.Sin(2*math.Pi*g.powerlineHz*t)
		}
		out[i] = v
	}
	return out, nil
}

// ecgCycle evaluates one cardiac cycle at a normalized phase in [0, 1):
// the P wave near 0.15, the QRS complex near 0.4, the T wave near 0.6.
func ecgCycle(phase float64) float64 {
	switch {
	case phase > 0.1 && phase < 0.2:
		return 0.25 * math.Sin((phase-0.1)*10*math.Pi)
	case phase > 0.35 && phase < 0.45:
		lp := (phase - 0.35) * 10
		switch {
		case lp < 0.3:
			return -0.2 * lp / 0.3
		case lp < 0.5:
			return -0.2 + 1.2*(lp-0.3)/0.2
		case lp < 0.7:
			return 1.0 - 1.3*(lp-0.5)/0.2
		default:
			return -0.3 + 0.3*(lp-0.7)/0.3
		}
	case phase > 0.55 && phase < 0.7:
		return 0.35 * math.Sin((phase-0.55)*6.67*math.Pi)
	default:
		return 0
	}
}

// Respiration generates a simulated respiration signal: a sinusoid at
// the breathing rate plus Gaussian noise.
func (g *Generator) Respiration(breathsPerMinute float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("respiration samples must be > 0: %d", samples)
	}
	if breathsPerMinute <= 0 {
		return nil, fmt.Errorf("respiration rate must be > 0: %f", breathsPerMinute)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("respiration sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	breathHz := breathsPerMinute / 60
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)

	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = math.Sin(2*math.Pi*breathHz*t) + g.noiseLevel*rng.NormFloat64()
	}
	return out, nil
}
