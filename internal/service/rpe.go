package service

import "math"

// roundRPE keeps one decimal digit, matching the NUMERIC(3,1) column.
func roundRPE(rpe *float64) *float64 {
	if rpe == nil {
		return nil
	}
	v := math.Round(*rpe*10) / 10
	return &v
}
