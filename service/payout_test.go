package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		gems     int
		expected float64
	}{
		{1, 1.3},
		{2, 1.6},
		{3, 1.9},
		{4, 2.2},
		{10, 4.0},
		{24, 8.2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Multiplier(tt.gems), "gems=%d", tt.gems)
	}
}

func TestReward(t *testing.T) {
	t.Run("zero gems forfeit the stake", func(t *testing.T) {
		assert.Equal(t, int64(0), Reward(100, 0))
	})

	t.Run("three gems on a 100 stake", func(t *testing.T) {
		assert.Equal(t, int64(190), Reward(100, 3))
	})

	t.Run("one gem on a 20 stake", func(t *testing.T) {
		assert.Equal(t, int64(26), Reward(20, 1))
	})

	t.Run("fractional payout truncates", func(t *testing.T) {
		// 15 * 1.3 = 19.5, paid out as 19
		assert.Equal(t, int64(19), Reward(15, 1))
	})

	t.Run("minimum stake with one gem", func(t *testing.T) {
		assert.Equal(t, int64(13), Reward(10, 1))
	})
}
