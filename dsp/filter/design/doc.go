// Package design computes biquad coefficients for the biosignal
// conditioning filters: RBJ lowpass/highpass/bandpass/notch sections and
// Butterworth cascades. Designs return zero-valued coefficients for
// out-of-range corner frequencies, so a misconfigured stage mutes rather
// than destabilizes the pipeline.
package design
