package movavg

import (
	"fmt"
	"math/bits"
)

// Filter is a fixed-window moving-average filter over scaled-integer
// samples. It maintains a running sum so each call is O(1) with no
// division once the window has filled; the full-window average uses an
// arithmetic right shift, valid because the window is a power of two.
//
// The filter is scale-agnostic: callers working with real-valued signals
// pre-multiply by a fixed-point scale factor and divide the output by
// the same factor.
type Filter struct {
	slots []int64
	sum   int64
	mask  int
	shift int
	index int
	count int
}

// New returns a zero-initialized filter with the given window size.
// The window must be a power of two so that index wraparound and the
// steady-state divide reduce to bit operations.
func New(window int) (*Filter, error) {
	if window <= 0 || window&(window-1) != 0 {
		return nil, fmt.Errorf("moving-average window must be a power of two: %d", window)
	}
	return &Filter{
		slots: make([]int64, window),
		mask:  window - 1,
		shift: bits.TrailingZeros(uint(window)),
	}, nil
}

// Filter ingests one sample and returns the average of the most recent
// window samples, or of all samples seen so far while the window is
// still filling.
func (f *Filter) Filter(sample int64) int64 {
	// The slot being replaced leaves the sum. During the first window
	// calls it is a still-zero slot, so the sum is unaffected.
	f.sum -= f.slots[f.index]

	f.slots[f.index] = sample
	f.sum += sample

	f.index = (f.index + 1) & f.mask

	if f.count < len(f.slots) {
		f.count++
	}

	if f.count == len(f.slots) {
		return f.sum >> f.shift
	}

	// Startup: divide by the actual sample count, truncating toward zero.
	return f.sum / int64(f.count)
}

// FilterBlock filters a block of samples in-place.
func (f *Filter) FilterBlock(buf []int64) {
	for i, s := range buf {
		buf[i] = f.Filter(s)
	}
}

// Average returns the current average without ingesting a sample.
// It returns 0 before any sample has been seen.
func (f *Filter) Average() int64 {
	if f.count == 0 {
		return 0
	}

	if f.count == len(f.slots) {
		return f.sum >> f.shift
	}

	return f.sum / int64(f.count)
}

// Count returns the number of samples ingested, capped at the window size.
func (f *Filter) Count() int {
	return f.count
}

// Window returns the fixed window size.
func (f *Filter) Window() int {
	return len(f.slots)
}

// Reset restores the as-constructed state: every slot zeroed, sum,
// index and count cleared. The zeroed slots are what keeps the running
// sum correct through the next startup phase.
func (f *Filter) Reset() {
	for i := range f.slots {
		f.slots[i] = 0
	}
	f.sum = 0
	f.index = 0
	f.count = 0
}
