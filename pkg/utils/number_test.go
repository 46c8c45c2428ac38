package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGroupedNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{input: "1,234,567", expected: 1234567.0},
		{input: "100000", expected: 100000.0},
		{input: " 2,500 ", expected: 2500.0},
		{input: "12.34", expected: 12.34},
		{input: "", wantErr: true},
		{input: "n/a", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseGroupedNumber(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}

		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 150000.0, RoundWithTwoDecimalPlace(150000.0001))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
