package calc

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/require"
)

// typeNumber enters a non-negative number key by key.
func typeNumber(t *testing.T, e *Engine, v string) {
	t.Helper()
	for _, r := range v {
		require.NoError(t, e.PressDigit(string(r)))
	}
}

func TestEngineMatchesExpressionOracle(t *testing.T) {
	operands := []string{"0", "1", "7", "12", "0.5", "3.25", "100", "999.9"}
	ops := map[Operation]string{Add: "+", Subtract: "-", Multiply: "*", Divide: "/"}

	for op, sym := range ops {
		expr, err := govaluate.NewEvaluableExpression("a " + sym + " b")
		require.NoError(t, err)
		for _, a := range operands {
			for _, b := range operands {
				if op == Divide && b == "0" {
					continue
				}
				t.Run(fmt.Sprintf("%s%s%s", a, sym, b), func(t *testing.T) {
					av, _ := strconv.ParseFloat(a, 64)
					bv, _ := strconv.ParseFloat(b, 64)
					got, err := expr.Evaluate(map[string]any{"a": av, "b": bv})
					require.NoError(t, err)

					e := New()
					typeNumber(t, e, a)
					require.NoError(t, e.PressOperator(op))
					typeNumber(t, e, b)
					e.PressEquals()

					require.Equal(t, FormatResult(got.(float64), '.'), e.Display())
					require.False(t, strings.HasSuffix(e.Display(), ".0"))
				})
			}
		}
	}
}
