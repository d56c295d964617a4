package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueFactor(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{1.0e7, "ohm", "10.000 Mohm"},
		{105342.7, "ohm", "105.343 kohm"},
		{3.5001, "V", "3.500 V"},
		{0.000668, "A", "0.668 mA"},
		{1.8832e-06, "A", "1.883 uA"},
		{2.5e-9, "s", "2.500 ns"},
		{-0.073, "V", "-73.000 mV"},
		{0, "W", "0.000 W"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatValueFactor(tc.value, tc.unit))
	}
}

func TestFormatFrequency(t *testing.T) {
	assert.Equal(t, "  1.000 kHz", FormatFrequency(1000))
	assert.Equal(t, "  2.500 MHz", FormatFrequency(2.5e6))
	assert.Equal(t, " 60.000 Hz ", FormatFrequency(60))
}
