// Package movavg implements a running-sum moving-average filter over
// fixed-point (scaled integer) samples, sized to a power-of-two window.
// It is designed for per-sample use in acquisition loops: constant time,
// no allocation after construction, no floating point, and no division
// once the window has filled. Like the rest of the acquisition
// primitives it is single-threaded by design.
package movavg
