// Package calc holds the pure prescription arithmetic: plate rounding,
// training-max derivation and the Epley-style e1RM estimate.
package calc

import "math"

// RoundToNearest5 rounds to the nearest multiple of 5, ties away from zero.
func RoundToNearest5(weight float64) float64 {
	return math.Round(weight/5) * 5
}

// CalculateTM derives a training max from a tested 1RM and the template's
// TM percentage.
func CalculateTM(tested1RM float64, tmPercentage int) float64 {
	return RoundToNearest5(tested1RM * float64(tmPercentage) / 100)
}

// CalculateWeight resolves a prescribed percentage against the training max.
func CalculateWeight(trainingMax float64, percentage int) float64 {
	return RoundToNearest5(trainingMax * float64(percentage) / 100)
}

// CalculateE1RM estimates a one-rep max from an AMRAP weight/rep pair,
// rounded to the nearest integer (no 5-rounding).
func CalculateE1RM(weight float64, reps int) float64 {
	return math.Round(weight*float64(reps)*0.0333 + weight)
}
