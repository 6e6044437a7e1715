package services

import "math"

const averagePrecision = 100

// Rounds average to two decimal places, halves away from zero.
// Nil means there was nothing to average and is returned as is.
func RoundAverage(avg *float64) *float64 {
	if avg == nil {
		return nil
	}

	rounded := math.Round(*avg*averagePrecision) / averagePrecision
	return &rounded
}
