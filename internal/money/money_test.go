package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinor(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		out  int64
	}{
		{"whole unit", 1, 100},
		{"two decimals", 1.23, 123},
		{"single paisa", 0.01, 1},
		{"half rounds up", 1.005, 101},
		{"half rounds up despite binary representation", 0.125, 13},
		{"below half rounds down", 1.0044, 100},
		{"trailing zero", 2.50, 250},
		{"large amount", 99999.99, 9999999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToMinor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.out, got)
		})
	}
}

func TestToMinorRejectsInvalid(t *testing.T) {
	for _, in := range []float64{0, -1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1), math.MaxFloat64} {
		_, err := ToMinor(in)
		assert.Error(t, err, "ToMinor(%v)", in)
	}
}

func TestFromMinor(t *testing.T) {
	assert.Equal(t, 123.45, FromMinor(12345))
	assert.Equal(t, float64(0), FromMinor(0))
}

func TestRoundTrip(t *testing.T) {
	for _, minor := range []int64{1, 99, 100, 12345, 9999999} {
		got, err := ToMinor(FromMinor(minor))
		require.NoError(t, err)
		assert.Equal(t, minor, got)
	}
}
