package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Simple amount",
			amount:   1234.5,
			expected: "$1,234.50",
		},
		{
			name:     "Large amount with separators",
			amount:   1965500.0,
			expected: "$1,965,500.00",
		},
		{
			name:     "Negative amount",
			amount:   -1234.56,
			expected: "-$1,234.56",
		},
		{
			name:     "Zero",
			amount:   0,
			expected: "$0.00",
		},
		{
			name:     "NaN guards to zero",
			amount:   math.NaN(),
			expected: "$0.00",
		},
		{
			name:     "Inf guards to zero",
			amount:   math.Inf(1),
			expected: "$0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "Simple percentage",
			value:    12.5,
			expected: "12.50%",
		},
		{
			name:     "Zero",
			value:    0,
			expected: "0.00%",
		},
		{
			name:     "Negative value",
			value:    -3.75,
			expected: "-3.75%",
		},
		{
			name:     "NaN guards to zero",
			value:    math.NaN(),
			expected: "0.00%",
		},
		{
			name:     "Inf guards to zero",
			value:    math.Inf(-1),
			expected: "0.00%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(tt.value)
			if result != tt.expected {
				t.Errorf("Percent(%v) = %s, expected %s", tt.value, result, tt.expected)
			}
		})
	}
}
