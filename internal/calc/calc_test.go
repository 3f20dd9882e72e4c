package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToNearest5(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{2, 0},
		{2.5, 5},
		{3, 5},
		{267.5, 270},
		{270, 270},
		{272.4, 270},
		{-3, -5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundToNearest5(tt.in), "RoundToNearest5(%v)", tt.in)
	}

	// Every result is a multiple of 5 and within 2.5 of the input.
	for x := 0.0; x < 500; x += 1.3 {
		got := RoundToNearest5(x)
		assert.Zero(t, math.Mod(got, 5))
		assert.LessOrEqual(t, math.Abs(got-x), 2.5)
	}
}

func TestCalculateTM(t *testing.T) {
	tests := []struct {
		name         string
		tested       float64
		tmPercentage int
		want         float64
	}{
		{"squat 300 at 90%", 300, 90, 270},
		{"bench 225 at 90%", 225, 90, 205},
		{"deadlift 405 at 85%", 405, 85, 345},
		{"ohp 135 at 90%", 135, 90, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTM(tt.tested, tt.tmPercentage))
		})
	}
}

func TestCalculateWeight(t *testing.T) {
	tests := []struct {
		tm         float64
		percentage int
		want       float64
	}{
		{270, 85, 230}, // 229.5 rounds up
		{270, 65, 175},
		{205, 95, 195},
		{120, 70, 85},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateWeight(tt.tm, tt.percentage), "CalculateWeight(%v, %v)", tt.tm, tt.percentage)
	}
}

func TestCalculateE1RM(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{225, 5, 262}, // 225*5*0.0333 + 225 = 262.46
		{315, 1, 325}, // 315*0.0333 + 315 = 325.49
		{185, 10, 247},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateE1RM(tt.weight, tt.reps), "CalculateE1RM(%v, %v)", tt.weight, tt.reps)
	}
}
