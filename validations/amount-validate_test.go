package validations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{input: "100", want: 100, ok: true},
		{input: "0.01", want: 0.01, ok: true},
		{input: "42.50", want: 42.5, ok: true},
		{input: "", ok: false},
		{input: "abc", ok: false},
		{input: "0", ok: false},
		{input: "-5", ok: false},
		{input: "NaN", ok: false},
		{input: "Inf", ok: false},
		{input: "-Inf", ok: false},
		{input: "1e3", want: 1000, ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			amount, err := ParseAmount(tc.input)

			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, amount)
		})
	}
}
