package keypad

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/keycalc/internal/calc"
)

func TestResolveTokenMapping(t *testing.T) {
	cases := []struct {
		token string
		kind  Kind
		op    calc.Operation
	}{
		{"+", Operator, calc.Add},
		{"-", Operator, calc.Subtract},
		{"×", Operator, calc.Multiply},
		{"x", Operator, calc.Multiply},
		{"÷", Operator, calc.Divide},
		{"/", Operator, calc.Divide},
		{"=", Equals, calc.None},
		{"AC", Clear, calc.None},
		{"5", Digit, calc.None},
	}
	for _, tc := range cases {
		in, err := Resolve(tc.token, '.')
		require.NoError(t, err, tc.token)
		require.Equal(t, tc.kind, in.Kind, tc.token)
		require.Equal(t, tc.op, in.Op, tc.token)
	}

	_, err := Resolve("sqrt", '.')
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestResolveSeparatorFollowsEngine(t *testing.T) {
	in, err := Resolve(".", ',')
	require.NoError(t, err)
	require.Equal(t, Intent{Kind: Digit, Token: ","}, in)

	in, err = Resolve(",", '.')
	require.NoError(t, err)
	require.Equal(t, ".", in.Token)
}

func TestPressDrivesEngine(t *testing.T) {
	e := calc.New()
	var display string
	var err error
	for _, tok := range []string{"5", "+", "3", "=", "+", "2", "="} {
		display, err = Press(e, tok)
		require.NoError(t, err)
	}
	require.Equal(t, "10", display)

	display, err = Press(e, "%")
	require.ErrorIs(t, err, ErrUnknownToken)
	require.Equal(t, "10", display)

	for _, tok := range []string{"1", "÷", "0", "="} {
		display, _ = Press(e, tok)
	}
	require.Equal(t, calc.DefaultErrorMarker, display)

	display, err = Press(e, "AC")
	require.NoError(t, err)
	require.Equal(t, "0", display)
}

func TestApplyUnknownKind(t *testing.T) {
	_, err := Apply(calc.New(), Intent{Kind: Kind(99)})
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestLayoutButtonsResolve(t *testing.T) {
	for _, sep := range []rune{'.', ','} {
		count := 0
		for _, row := range Layout(sep) {
			for _, b := range row {
				_, err := Resolve(b.Label, sep)
				require.NoError(t, err, b.Label)
				require.Equal(t, b.Label, LabelFor(b.Action, sep))
				count++
			}
		}
		require.Equal(t, 17, count)
	}
	require.Empty(t, LabelFor(ActionQuit, '.'))
}
