// Package heartrate estimates heart and respiration rates from acquired
// biosignals. Two estimators are provided: a time-domain method using the
// spacing of detected peaks, and a frequency-domain method that searches
// a Hann-windowed magnitude spectrum for the dominant frequency within a
// physiological band.
package heartrate
