package peak

import "fmt"

// Detector flags rising samples that exceed a threshold, enforcing a
// minimum spacing between consecutive peaks. It processes one sample at
// a time with constant cost, suitable for acquisition loops.
type Detector struct {
	threshold   float64
	minDistance int
	lastValue   float64
	lastPeak    int
}

// New returns a detector with the given threshold and minimum number of
// samples between reported peaks.
func New(threshold float64, minDistance int) (*Detector, error) {
	if minDistance < 0 {
		return nil, fmt.Errorf("peak min distance must be >= 0: %d", minDistance)
	}
	d := &Detector{
		threshold:   threshold,
		minDistance: minDistance,
	}
	d.Reset()
	return d, nil
}

// Update ingests one sample and reports whether it is a peak: above the
// threshold, rising relative to the previous sample, and at least the
// minimum distance past the previous peak.
func (d *Detector) Update(value float64, sampleIndex int) bool {
	isPeak := value > d.threshold &&
		value > d.lastValue &&
		sampleIndex-d.lastPeak > d.minDistance

	if isPeak {
		d.lastPeak = sampleIndex
	}
	d.lastValue = value

	return isPeak
}

// Reset clears detector state so a new sample stream can begin at index 0.
func (d *Detector) Reset() {
	d.lastValue = 0
	// Far enough back that a peak near index 0 is not suppressed.
	d.lastPeak = -(d.minDistance + 1)
}
