package stats

import (
	"math"
	"time"
)

// Sum adds up a slice of values. Empty input yields 0.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Mean is the arithmetic average. Empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// StdDev is the population standard deviation (squared deviations
// divided by n, not n-1). Empty input yields 0.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// ConsistencyScore maps wake-time variability to a 0-100 score via
// linear decay, clamped at zero.
func ConsistencyScore(wakeTimesMinutes []float64) float64 {
	score := 100 - 2*StdDev(wakeTimesMinutes)
	if score < 0 {
		return 0
	}
	return score
}

// MinutesAfterMidnight converts a clock time to minutes since the
// start of its day.
func MinutesAfterMidnight(t time.Time) float64 {
	return float64(t.Hour()*60 + t.Minute())
}

// Round1 rounds to one decimal place, matching the precision used in
// reported weekly statistics.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
