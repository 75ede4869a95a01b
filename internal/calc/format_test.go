package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in   float64
		sep  rune
		want string
	}{
		{10, '.', "10"},
		{-4, '.', "-4"},
		{0, '.', "0"},
		{math.Copysign(0, -1), '.', "0"},
		{1.0 / 3, '.', "0.33"},
		{1.0 / 3, ',', "0,33"},
		{-2.0 / 3, '.', "-0.67"},
		{0.125, '.', "0.13"},
		{1.005, '.', "1.01"},
		{99.995, '.', "100.00"},
		{2.5, '.', "2.50"},
		{-0.001, '.', "0.00"},
		{1e15, '.', "1000000000000000"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatResult(tc.in, tc.sep), "%v", tc.in)
	}
}

func TestIncrementDigits(t *testing.T) {
	require.Equal(t, "124", incrementDigits("123"))
	require.Equal(t, "130", incrementDigits("129"))
	require.Equal(t, "1000", incrementDigits("999"))
}
