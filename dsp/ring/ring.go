package ring

import "fmt"

// Ring is a fixed-capacity circular FIFO of float64 samples with
// overwrite-on-full semantics. All operations are O(1) except Mean,
// and none allocate after construction.
type Ring struct {
	data  []float64
	mask  int
	head  int // next write position
	tail  int // oldest element
	count int
}

// New returns an empty, zero-filled ring of the given capacity.
// The capacity must be a power of two so that index wraparound can use a
// bitmask instead of modulo.
func New(capacity int) (*Ring, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ring capacity must be a power of two: %d", capacity)
	}
	return &Ring{
		data: make([]float64, capacity),
		mask: capacity - 1,
	}, nil
}

// Push stores v, evicting the oldest sample if the ring is full.
// It returns false when an eviction occurred and true otherwise; the
// sample itself is always stored.
func (r *Ring) Push(v float64) bool {
	wasFull := r.count == len(r.data)

	r.data[r.head] = v
	r.head = (r.head + 1) & r.mask

	if wasFull {
		r.tail = (r.tail + 1) & r.mask
		return false
	}

	r.count++
	return true
}

// Pop removes and returns the oldest sample.
// The second return value is false when the ring is empty.
func (r *Ring) Pop() (float64, bool) {
	if r.count == 0 {
		return 0, false
	}

	v := r.data[r.tail]
	r.tail = (r.tail + 1) & r.mask
	r.count--

	return v, true
}

// Peek returns the sample at the given offset from the oldest element
// (offset 0 = oldest) without removing it. The second return value is
// false when the offset is out of range.
func (r *Ring) Peek(offset int) (float64, bool) {
	if offset < 0 || offset >= r.count {
		return 0, false
	}

	return r.data[(r.tail+offset)&r.mask], true
}

// Len returns the number of samples currently held.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Empty reports whether the ring holds no samples.
func (r *Ring) Empty() bool {
	return r.count == 0
}

// Full reports whether the next Push will evict.
func (r *Ring) Full() bool {
	return r.count == len(r.data)
}

// Mean returns the arithmetic mean of all held samples in oldest-to-newest
// order, or 0 when the ring is empty.
func (r *Ring) Mean() float64 {
	if r.count == 0 {
		return 0
	}

	var sum float64
	idx := r.tail
	for i := 0; i < r.count; i++ {
		sum += r.data[idx]
		idx = (idx + 1) & r.mask
	}

	return sum / float64(r.count)
}

// Clear empties the ring without touching storage. Stale slots become
// unreachable because the count drops to zero.
func (r *Ring) Clear() {
	r.head = 0
	r.tail = 0
	r.count = 0
}

// Reset empties the ring and zero-fills storage, restoring the
// as-constructed state.
func (r *Ring) Reset() {
	r.Clear()
	for i := range r.data {
		r.data[i] = 0
	}
}
