package analytics

import (
	"fmt"
	"math"
	"time"
)

// mean is nil for an empty sample.
func mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	m := sum / float64(len(xs))
	return &m
}

// sampleVariance uses the N-1 denominator and is nil below two samples.
func sampleVariance(xs []float64) *float64 {
	if len(xs) < 2 {
		return nil
	}
	m := *mean(xs)
	var sq float64
	for _, x := range xs {
		sq += (x - m) * (x - m)
	}
	v := sq / float64(len(xs)-1)
	return &v
}

func sampleStdDev(xs []float64) *float64 {
	v := sampleVariance(xs)
	if v == nil {
		return nil
	}
	sd := math.Sqrt(*v)
	return &sd
}

// coefficientOfVariation is stddev/mean, nil when either is undefined or the mean is zero.
func coefficientOfVariation(xs []float64) *float64 {
	sd := sampleStdDev(xs)
	m := mean(xs)
	if sd == nil || m == nil || *m == 0 {
		return nil
	}
	cv := *sd / *m
	if math.IsNaN(cv) || math.IsInf(cv, 0) {
		return nil
	}
	return &cv
}

// isoWeek formats t as YYYY-Www using the ISO 8601 week-numbering year.
func isoWeek(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
