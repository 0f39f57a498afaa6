// Package adaptive implements an LMS adaptive noise canceller. Given a
// reference recording of an interference source, it learns the filter
// that maps the reference onto the contaminated signal and subtracts
// the prediction, leaving the signal of interest.
package adaptive

import "fmt"

// LMS is a least-mean-squares adaptive filter. Weights persist across
// calls to Cancel so the filter keeps adapting over a session.
type LMS struct {
	step    float64
	weights []float64
}

// NewLMS creates an adaptive canceller with the given number of filter
// taps. The step size controls adaptation speed; too large a step makes
// the weight update diverge, so it must stay well below the inverse of
// the reference signal power times the tap count.
func NewLMS(taps int, step float64) (*LMS, error) {
	if taps <= 0 {
		return nil, fmt.Errorf("adaptive: taps must be positive, got %d", taps)
	}
	if step <= 0 {
		return nil, fmt.Errorf("adaptive: step must be positive, got %v", step)
	}
	return &LMS{
		step:    step,
		weights: make([]float64, taps),
	}, nil
}

// Cancel removes the component of primary that is predictable from
// reference and returns the residual. The first taps-1 samples pass
// through unchanged while the reference window fills.
func (f *LMS) Cancel(primary, reference []float64) ([]float64, error) {
	if len(primary) != len(reference) {
		return nil, fmt.Errorf("adaptive: primary length %d does not match reference length %d",
			len(primary), len(reference))
	}

	out := make([]float64, len(primary))
	for n := range primary {
		if n < len(f.weights)-1 {
			out[n] = primary[n]
			continue
		}

		var y float64
		for k, w := range f.weights {
			y += w * reference[n-k]
		}

		e := primary[n] - y
		out[n] = e

		g := 2 * f.step * e
		for k := range f.weights {
			f.weights[k] += g * reference[n-k]
		}
	}
	return out, nil
}

// Weights returns a copy of the current filter weights.
func (f *LMS) Weights() []float64 {
	w := make([]float64, len(f.weights))
	copy(w, f.weights)
	return w
}

// Reset zeroes the weights, discarding everything learned so far.
func (f *LMS) Reset() {
	for i := range f.weights {
		f.weights[i] = 0
	}
}
