// Package analytics derives read-only reports from job applications, contacts
// and interview stages. Every function is pure: no I/O, no errors. Empty input
// yields zero values and empty, non-nil slices.
package analytics

import (
	"slices"
	"time"
)

const day = 24 * time.Hour

// Stats summarizes a sample of durations or counts.
type Stats struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	SampleSize int     `json:"sampleSize"`
}

// Average returns the arithmetic mean, or 0 for an empty sample.
func Average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median returns the middle value (mean of the two middle values for even
// sizes), or 0 for an empty sample. xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Summarize computes Stats over xs.
func Summarize(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	return Stats{
		Mean:       Average(xs),
		Median:     Median(xs),
		Min:        slices.Min(xs),
		Max:        slices.Max(xs),
		SampleSize: len(xs),
	}
}

// Rate returns num/den clamped to [0,1]. A zero or negative denominator yields 0.
func Rate(num, den int) float64 {
	if den <= 0 || num <= 0 {
		return 0
	}
	r := float64(num) / float64(den)
	return min(r, 1)
}

// SuccessRate is offers / (offers + rejections).
//
//	0 when no application reached a terminal outcome
func SuccessRate(offers, rejections int) float64 {
	return Rate(offers, offers+rejections)
}

// days converts a duration to fractional days.
func days(d time.Duration) float64 {
	return d.Hours() / 24
}

// outcome tallies the current status of a group of applications.
type outcome struct {
	Total      int
	Offers     int
	Rejections int
	Active     int
}
