package common

import (
	"testing"
	"time"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		expected string
	}{
		{"Zero", 0, "0"},
		{"Less than 1k", 999, "999"},
		{"Exactly 1k", 1000, "1,000"},
		{"Tens of thousands", 25500, "25,500"},
		{"Millions", 1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBalance(tt.balance)
			if result != tt.expected {
				t.Errorf("FormatBalance(%d) = %s; want %s", tt.balance, result, tt.expected)
			}
		})
	}
}

func TestFormatCooldown(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"Seconds round down", 20 * time.Second, "less than a minute"},
		{"Minutes only", 45 * time.Minute, "45m"},
		{"Whole hours", 3 * time.Hour, "3h"},
		{"Hours and minutes", 2*time.Hour + 30*time.Minute, "2h 30m"},
		{"Whole days", 48 * time.Hour, "2d"},
		{"Days and hours", 3*24*time.Hour + 5*time.Hour, "3d 5h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatCooldown(tt.d)
			if result != tt.expected {
				t.Errorf("FormatCooldown(%v) = %s; want %s", tt.d, result, tt.expected)
			}
		})
	}
}
