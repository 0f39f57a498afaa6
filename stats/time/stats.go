package time

import "math"

// Stats holds time-domain statistics of an acquired signal.
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	Variance      float64
	StdDev        float64
	Min           float64
	Max           float64
	Peak          float64 // max(|max|, |min|)
	ZeroCrossings int
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for a numerically stable variance.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean  float64
		m2    float64
		sumSq float64

		maxVal        = signal[0]
		minVal        = signal[0]
		zeroCrossings int
	)

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}
		if x < minVal {
			minVal = x
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Length:        n,
		Mean:          mean,
		RMS:           math.Sqrt(sumSq / nf),
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		Min:           minVal,
		Max:           maxVal,
		Peak:          math.Max(math.Abs(maxVal), math.Abs(minVal)),
		ZeroCrossings: zeroCrossings,
	}
}

// Mean returns the mean of the signal using Kahan summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// StdDev returns the population standard deviation of the signal.
func StdDev(signal []float64) float64 {
	return Calculate(signal).StdDev
}

// StreamingStats accumulates the same statistics incrementally so an
// acquisition loop can measure noise without retaining sample arrays.
type StreamingStats struct {
	n          int
	mean       float64
	m2         float64
	sumSq      float64
	maxVal     float64
	minVal     float64
	crossings  int
	hasData    bool
	lastSample float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds one sample to the running statistics.
func (s *StreamingStats) Update(x float64) {
	s.n++
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)

	s.sumSq += x * x

	if !s.hasData {
		s.maxVal = x
		s.minVal = x
		s.hasData = true
	} else {
		if x > s.maxVal {
			s.maxVal = x
		}
		if x < s.minVal {
			s.minVal = x
		}
	}

	if s.n > 1 && s.lastSample*x < 0 {
		s.crossings++
	}
	s.lastSample = x
}

// UpdateBlock adds a block of samples.
func (s *StreamingStats) UpdateBlock(samples []float64) {
	for _, x := range samples {
		s.Update(x)
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	return Stats{
		Length:        s.n,
		Mean:          s.mean,
		RMS:           math.Sqrt(s.sumSq / nf),
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		Min:           s.minVal,
		Max:           s.maxVal,
		Peak:          math.Max(math.Abs(s.maxVal), math.Abs(s.minVal)),
		ZeroCrossings: s.crossings,
	}
}

// Reset clears all accumulated data for reuse.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
