package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round down",
			input:    1.234,
			expected: 1.23,
		},
		{
			name:     "Round up",
			input:    1.235,
			expected: 1.24,
		},
		{
			name:     "Negative value",
			input:    -1.005,
			expected: -1.0,
		},
		{
			name:     "Already two decimals",
			input:    99.99,
			expected: 99.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Errorf("IsZero(0.005) = false, expected true")
	}
	if IsZero(0.02) {
		t.Errorf("IsZero(0.02) = true, expected false")
	}
	if !IsZero(-0.01) {
		t.Errorf("IsZero(-0.01) = false, expected true")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.005, 0.01) {
		t.Errorf("WithinTolerance(100.0, 100.005, 0.01) = false, expected true")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Errorf("WithinTolerance(100.0, 100.02, 0.01) = true, expected false")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Errorf("Min(3, 5) = %v, expected 3", Min(3, 5))
	}
	if Min(5, 3) != 3 {
		t.Errorf("Min(5, 3) = %v, expected 3", Min(5, 3))
	}
	if Max(3, 5) != 5 {
		t.Errorf("Max(3, 5) = %v, expected 5", Max(3, 5))
	}
	if Max(-3, -5) != -3 {
		t.Errorf("Max(-3, -5) = %v, expected -3", Max(-3, -5))
	}
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{
			name:        "Normal division",
			numerator:   10,
			denominator: 4,
			expected:    2.5,
		},
		{
			name:        "Zero denominator",
			numerator:   10,
			denominator: 0,
			expected:    0,
		},
		{
			name:        "Zero numerator",
			numerator:   0,
			denominator: 5,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeDivide(tt.numerator, tt.denominator)
			if result != tt.expected {
				t.Errorf("SafeDivide(%v, %v) = %v, expected %v", tt.numerator, tt.denominator, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{
			name:       "One percent",
			value:      130000,
			percentage: 1.0,
			expected:   1300,
		},
		{
			name:       "Full financing",
			value:      100000,
			percentage: 100,
			expected:   100000,
		},
		{
			name:       "Zero percentage",
			value:      50000,
			percentage: 0,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}
