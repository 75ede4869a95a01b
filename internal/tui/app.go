package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/keycalc/internal/calc"
	"github.com/jask/keycalc/internal/config"
	"github.com/jask/keycalc/internal/keypad"
)

// App is one calculator screen: a display above an on-screen keypad.
type App struct {
	cfg     config.Config
	engine  *calc.Engine
	keys    *keypad.KeyRegistry
	log     *slog.Logger
	session string

	grid      [][]keypad.Button
	row       int
	col       int
	scope     string
	status    string
	statusErr bool
	help      help.Model
	width     int
	height    int
}

func New(cfg config.Config, keys *keypad.KeyRegistry, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	session := uuid.NewString()
	log = log.With("session", session)
	sep := cfg.Separator()
	return &App{
		cfg: cfg,
		engine: calc.New(
			calc.WithDecimalSeparator(sep),
			calc.WithErrorMarker(cfg.Display.ErrorMarker),
			calc.WithLogger(log),
		),
		keys:    keys,
		log:     log,
		session: session,
		grid:    keypad.Layout(sep),
		scope:   keypad.ScopeKeypad,
		help:    help.New(),
		width:   40,
		height:  20,
	}
}

func (a *App) Init() tea.Cmd {
	a.log.Info("calculator session started")
	return nil
}

// Display is the string currently shown on the calculator display.
func (a *App) Display() string { return a.engine.Display() }

func (a *App) Session() string { return a.session }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		action, ok := a.keys.ActionFor(m, a.scope)
		if !ok {
			return a, nil
		}
		return a, a.handleAction(action)
	}
	return a, nil
}

func (a *App) handleAction(action string) tea.Cmd {
	switch action {
	case keypad.ActionQuit:
		a.log.Info("calculator session ended", "display", a.engine.Display())
		return tea.Quit
	case keypad.ActionHelp:
		if a.scope == keypad.ScopeHelp {
			a.scope = keypad.ScopeKeypad
		} else {
			a.scope = keypad.ScopeHelp
		}
	case keypad.ActionUp:
		a.moveFocus(-1, 0)
	case keypad.ActionDown:
		a.moveFocus(1, 0)
	case keypad.ActionLeft:
		a.moveFocus(0, -1)
	case keypad.ActionRight:
		a.moveFocus(0, 1)
	case keypad.ActionPress:
		a.press(a.grid[a.row][a.col])
	default:
		if b, ok := a.buttonFor(action); ok {
			a.press(b)
		}
	}
	return nil
}

func (a *App) press(b keypad.Button) {
	a.focus(b.Action)
	_, err := keypad.Press(a.engine, b.Label)
	switch {
	case err != nil:
		a.log.Warn("press rejected", "button", b.Label, "err", err)
		a.setError(err.Error())
	case a.engine.Err() != nil:
		a.setError(a.engine.Err().Error())
	case a.engine.Pending() != calc.None:
		first, _ := a.engine.Operands()
		a.setStatus(calc.FormatResult(first, a.engine.Separator()) + " " + a.engine.Pending().String())
	default:
		a.setStatus("")
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

func (a *App) buttonFor(action string) (keypad.Button, bool) {
	for _, row := range a.grid {
		for _, b := range row {
			if b.Action == action {
				return b, true
			}
		}
	}
	return keypad.Button{}, false
}

func (a *App) focus(action string) {
	for r, row := range a.grid {
		for c, b := range row {
			if b.Action == action {
				a.row, a.col = r, c
				return
			}
		}
	}
}

func (a *App) moveFocus(dr, dc int) {
	a.row = clamp(a.row+dr, 0, len(a.grid)-1)
	a.col = clamp(a.col+dc, 0, len(a.grid[a.row])-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
