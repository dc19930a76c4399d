package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundAriary(t *testing.T) {
	assert.Equal(t, 199999.99, RoundAriary(199999.994))
	assert.Equal(t, 0.33, RoundAriary(1.0/3.0))
	assert.Equal(t, 0.0, RoundAriary(0))
}

func TestFormatAriary(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0.00 Ar"},
		{950, "950.00 Ar"},
		{1234567.5, "1 234 567.50 Ar"},
		{-2500, "-2 500.00 Ar"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatAriary(tt.amount))
	}
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "1500", FormatKg(1500))
	assert.Equal(t, "12.5", FormatKg(12.5))
}
