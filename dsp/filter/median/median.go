// Package median implements a streaming median filter for removing
// impulsive artifacts such as motion spikes from biosignal streams.
package median

import (
	"fmt"
	"sort"
)

// Filter replaces each sample with the median of the last Window samples.
// Until the window has filled, the median is taken over the samples seen
// so far.
type Filter struct {
	window  int
	history []float64
	scratch []float64
	index   int
	count   int
}

// New creates a median filter. The window must be a positive odd number
// so the median is always a single observed sample.
func New(window int) (*Filter, error) {
	if window <= 0 || window%2 == 0 {
		return nil, fmt.Errorf("median: window must be positive and odd, got %d", window)
	}
	return &Filter{
		window:  window,
		history: make([]float64, window),
		scratch: make([]float64, window),
	}, nil
}

// ProcessSample pushes one sample and returns the current median.
func (f *Filter) ProcessSample(x float64) float64 {
	f.history[f.index] = x
	f.index++
	if f.index == f.window {
		f.index = 0
	}
	if f.count < f.window {
		f.count++
	}

	s := f.scratch[:f.count]
	copy(s, f.history[:f.count])
	sort.Float64s(s)
	return s[f.count/2]
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Window returns the configured window length.
func (f *Filter) Window() int {
	return f.window
}

// Reset clears the sample history.
func (f *Filter) Reset() {
	for i := range f.history {
		f.history[i] = 0
	}
	f.index = 0
	f.count = 0
}
