package keypad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/keycalc/internal/calc"
)

var ErrUnknownToken = errors.New("unknown keypad token")

type Kind int

const (
	Digit Kind = iota
	Operator
	Equals
	Clear
)

// Intent is one discrete press forwarded to the engine.
type Intent struct {
	Kind  Kind
	Token string
	Op    calc.Operation
}

// Resolve maps a button label to an intent. Both "." and "," resolve to the
// engine's separator sep.
func Resolve(token string, sep rune) (Intent, error) {
	t := strings.TrimSpace(token)
	switch t {
	case "=":
		return Intent{Kind: Equals, Token: t}, nil
	case "AC", "C", "ac", "c":
		return Intent{Kind: Clear, Token: t}, nil
	case ".", ",":
		return Intent{Kind: Digit, Token: string(sep)}, nil
	}
	if len(t) == 1 && t[0] >= '0' && t[0] <= '9' {
		return Intent{Kind: Digit, Token: t}, nil
	}
	if op, err := calc.ParseOperation(t); err == nil {
		return Intent{Kind: Operator, Token: t, Op: op}, nil
	}
	return Intent{}, fmt.Errorf("resolve %q: %w", token, ErrUnknownToken)
}

// Apply forwards in to e and returns the display to render.
func Apply(e *calc.Engine, in Intent) (string, error) {
	var err error
	switch in.Kind {
	case Digit:
		err = e.PressDigit(in.Token)
	case Operator:
		err = e.PressOperator(in.Op)
	case Equals:
		e.PressEquals()
	case Clear:
		e.PressClear()
	default:
		err = fmt.Errorf("apply kind %d: %w", int(in.Kind), ErrUnknownToken)
	}
	return e.Display(), err
}

// Press resolves a label against e's separator and applies it.
func Press(e *calc.Engine, token string) (string, error) {
	in, err := Resolve(token, e.Separator())
	if err != nil {
		return e.Display(), err
	}
	return Apply(e, in)
}
