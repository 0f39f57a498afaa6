// Package ring provides a fixed-capacity circular buffer for real-time
// sample acquisition. Capacity is restricted to powers of two so that
// wraparound indexing reduces to a bitmask, and a push into a full ring
// overwrites the oldest sample instead of failing. The type is not
// safe for concurrent use; the intended model is a single producer and
// single consumer running in one control flow.
package ring
