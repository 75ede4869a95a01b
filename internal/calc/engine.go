package calc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultSeparator   = '.'
	DefaultErrorMarker = "Error"

	initialDisplay = "0"
)

// State is the coarse phase of an Engine.
type State int

const (
	EnteringFirst State = iota
	OperatorSelected
	ShowingError
)

func (s State) String() string {
	switch s {
	case OperatorSelected:
		return "operator-selected"
	case ShowingError:
		return "error"
	default:
		return "entering-first"
	}
}

type Option func(*Engine)

// WithDecimalSeparator sets the separator typed and displayed. Only '.' and ','
// are accepted; anything else keeps the default.
func WithDecimalSeparator(sep rune) Option {
	return func(e *Engine) {
		if sep == '.' || sep == ',' {
			e.sep = sep
		}
	}
}

func WithErrorMarker(marker string) Option {
	return func(e *Engine) {
		if strings.TrimSpace(marker) != "" {
			e.marker = marker
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Engine holds one calculator session. It is not safe for concurrent use; the
// owning UI serialises intents.
type Engine struct {
	display string
	first   float64
	second  float64
	op      Operation
	err     error

	sep    rune
	marker string
	log    *slog.Logger
}

func New(opts ...Option) *Engine {
	e := &Engine{
		sep:    DefaultSeparator,
		marker: DefaultErrorMarker,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.display = initialDisplay
	e.first = 0
	e.second = 0
	e.op = None
	e.err = nil
}

// PressDigit appends a digit or the decimal separator to the display. A
// leading "0" is replaced by the first digit; a second separator is ignored.
func (e *Engine) PressDigit(token string) error {
	if !e.isDigitToken(token) {
		return fmt.Errorf("press digit %q: %w", token, ErrInvalidToken)
	}
	if e.err != nil {
		e.reset()
	}
	sep := string(e.sep)
	if token == sep && strings.Contains(e.display, sep) {
		e.log.Debug("separator ignored", "display", e.display)
		return nil
	}

	next := e.display + token
	if e.display == initialDisplay && token != sep {
		next = token
	}
	v, err := e.parse(next)
	if err != nil {
		return fmt.Errorf("press digit %q: %w", token, err)
	}
	e.display = next
	if e.op == None {
		e.first = v
	} else {
		e.second = v
	}
	e.log.Debug("digit", "token", token, "display", e.display)
	return nil
}

// PressOperator arms op, captures the displayed number as the first operand
// and starts a fresh entry. Pressing again before equals re-arms.
func (e *Engine) PressOperator(op Operation) error {
	if !op.Valid() {
		return fmt.Errorf("press operator %d: %w", int(op), ErrInvalidOperation)
	}
	if e.err != nil {
		e.reset()
	}
	v, err := e.parse(e.display)
	if err != nil {
		return fmt.Errorf("press operator %s: %w", op, err)
	}
	e.op = op
	e.first = v
	e.display = initialDisplay
	e.log.Debug("operator", "op", op.String(), "first", e.first)
	return nil
}

// PressEquals evaluates the pending operation. With nothing pending the
// result is 0. A zero divisor leaves the operands in place and shows the
// error marker.
func (e *Engine) PressEquals() {
	if e.err != nil {
		e.reset()
	}
	if e.op == Divide && e.second == 0 {
		e.fail(ErrDivisionByZero)
		return
	}
	result := e.op.apply(e.first, e.second)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		e.fail(ErrNonFinite)
		return
	}
	e.log.Debug("equals", "first", e.first, "op", e.op.String(), "second", e.second, "result", result)
	e.op = None
	e.first = result
	e.second = 0
	e.display = FormatResult(result, e.sep)
}

func (e *Engine) fail(err error) {
	e.err = err
	e.display = e.marker
	e.log.Warn("evaluation failed", "err", err, "first", e.first, "op", e.op.String(), "second", e.second)
}

// PressClear returns the engine to its initial state.
func (e *Engine) PressClear() {
	e.reset()
	e.log.Debug("clear")
}

func (e *Engine) Display() string { return e.display }

func (e *Engine) Pending() Operation { return e.op }

func (e *Engine) Operands() (first, second float64) { return e.first, e.second }

// Err returns the error behind the marker currently shown, if any.
func (e *Engine) Err() error { return e.err }

func (e *Engine) Separator() rune { return e.sep }

func (e *Engine) State() State {
	switch {
	case e.err != nil:
		return ShowingError
	case e.op != None:
		return OperatorSelected
	default:
		return EnteringFirst
	}
}

func (e *Engine) isDigitToken(token string) bool {
	if token == string(e.sep) {
		return true
	}
	return len(token) == 1 && token[0] >= '0' && token[0] <= '9'
}

func (e *Engine) parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, string(e.sep), ".", 1), 64)
	if err != nil {
		// Overlong digit runs saturate to ±Inf; equals turns that into ErrNonFinite.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("parse display %q: %w", s, err)
	}
	return v, nil
}
