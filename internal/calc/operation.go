package calc

import (
	"fmt"
	"strings"
)

// Operation is the binary operator awaiting its second operand.
type Operation int

const (
	None Operation = iota
	Add
	Subtract
	Multiply
	Divide
)

func (o Operation) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

// Valid reports whether o is one of the four arithmetic operators.
func (o Operation) Valid() bool {
	return o >= Add && o <= Divide
}

func (o Operation) apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		return 0
	}
}

// ParseOperation maps a keypad operator label to its Operation.
func ParseOperation(token string) (Operation, error) {
	switch strings.TrimSpace(token) {
	case "+":
		return Add, nil
	case "-", "−":
		return Subtract, nil
	case "×", "x", "X", "*":
		return Multiply, nil
	case "÷", "/":
		return Divide, nil
	default:
		return None, fmt.Errorf("operator %q: %w", token, ErrInvalidOperation)
	}
}
