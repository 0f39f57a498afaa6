// Package biquad implements second-order IIR filter sections in Direct
// Form II Transposed, and cascades of them. Sections are the execution
// backend for the biosignal conditioning filters designed in
// dsp/filter/design: baseline-drift removal, bandwidth limiting, and
// powerline notch filtering ahead of peak detection.
package biquad
