package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/keycalc/internal/calc"
	"github.com/jask/keycalc/internal/keypad"
)

var footerActions = []string{
	keypad.ActionEquals,
	keypad.ActionClear,
	keypad.ActionPress,
	keypad.ActionHelp,
	keypad.ActionQuit,
}

func (a *App) View() string {
	if a.scope == keypad.ScopeHelp {
		return a.renderHelp()
	}
	sections := []string{
		titleStyle.Render("keycalc"),
		a.renderDisplay(),
		a.renderKeypad(),
		a.renderStatus(),
		a.help.ShortHelpView(a.footerBindings()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderDisplay() string {
	width := a.cfg.Display.Width
	if width <= 0 {
		width = 24
	}
	style := displayStyle
	if a.engine.State() == calc.ShowingError {
		style = displayErrStyle
	}
	return style.Width(width).Render(fitLeft(a.engine.Display(), width-2))
}

// fitLeft keeps the rightmost digits of s when it is wider than n.
func fitLeft(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return "…" + string(r[len(r)-n+1:])
}

func (a *App) renderKeypad() string {
	rows := make([]string, 0, len(a.grid))
	for r, row := range a.grid {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			style := buttonStyle
			switch {
			case r == a.row && c == a.col:
				style = focusedButtonStyle
			case isOperator(b.Action):
				style = operatorButtonStyle
			}
			cells = append(cells, style.Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func isOperator(action string) bool {
	switch action {
	case keypad.ActionAdd, keypad.ActionSubtract, keypad.ActionMultiply, keypad.ActionDivide, keypad.ActionEquals:
		return true
	}
	return false
}

func (a *App) renderStatus() string {
	if a.statusErr {
		return statusErrStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}

func (a *App) footerBindings() []key.Binding {
	out := make([]key.Binding, 0, len(footerActions))
	for _, action := range footerActions {
		keys := a.keys.KeysFor(action)
		if len(keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keyLabel(keys[0]), action),
		))
	}
	return out
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("keys"))
	b.WriteString("\n")
	seen := map[string]bool{}
	for _, kb := range a.keys.BindingsForScope(keypad.ScopeKeypad) {
		if seen[kb.Action] {
			continue
		}
		seen[kb.Action] = true
		labels := make([]string, 0, len(kb.Keys))
		for _, k := range kb.Keys {
			labels = append(labels, keyLabel(k))
		}
		b.WriteString(keyStyle.Render(strings.Join(labels, "/")))
		b.WriteString(" ")
		b.WriteString(helpDescStyle.Render(kb.Description))
		b.WriteString("\n")
	}
	return b.String()
}
