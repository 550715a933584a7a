package service

import (
	"math"
)

// Multiplier returns the payout factor for the given number of revealed gems:
// linear growth of 0.3 per gem on top of the stake, rounded to two decimals.
func Multiplier(gems int) float64 {
	return math.Round((1+0.3*float64(gems))*100) / 100
}

// Reward returns the coins paid out for cashing out the given stake with the
// given number of gems. Zero gems forfeit the stake entirely; otherwise the
// reward is the stake scaled by the multiplier, truncated to whole coins.
func Reward(stake int64, gems int) int64 {
	if gems == 0 {
		return 0
	}
	return int64(float64(stake) * Multiplier(gems))
}
