package keypad

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ActionClear     = "clear"
	ActionEquals    = "equals"
	ActionAdd       = "add"
	ActionSubtract  = "subtract"
	ActionMultiply  = "multiply"
	ActionDivide    = "divide"
	ActionSeparator = "separator"
	ActionQuit      = "quit"
	ActionHelp      = "help"
	ActionUp        = "focus-up"
	ActionDown      = "focus-down"
	ActionLeft      = "focus-left"
	ActionRight     = "focus-right"
	ActionPress     = "press-focused"

	ScopeKeypad = "keypad"
	ScopeHelp   = "help"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// ActionFor returns the first action bound to msg in scope.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

// KeysFor returns the keys of the first binding for action.
func (r *KeyRegistry) KeysFor(action string) []string {
	for _, b := range r.bindings {
		if b.Action == action {
			return append([]string(nil), b.Keys...)
		}
	}
	return nil
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.ActionFor(msg, scope)
	return ok && got == action
}

// normalizeKey lowercases named keys only; "X" and "x" stay distinct runes.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings(sep rune) []KeyBinding {
	bindings := make([]KeyBinding, 0, 24)
	for d := '0'; d <= '9'; d++ {
		bindings = append(bindings, KeyBinding{
			Keys: []string{string(d)}, Action: "digit-" + string(d), Description: string(d), Scopes: []string{ScopeKeypad},
		})
	}
	return append(bindings,
		KeyBinding{Keys: []string{".", ","}, Action: ActionSeparator, Description: string(sep), Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"+"}, Action: ActionAdd, Description: "add", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"-"}, Action: ActionSubtract, Description: "subtract", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"*", "x"}, Action: ActionMultiply, Description: "multiply", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"/"}, Action: ActionDivide, Description: "divide", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"enter", "="}, Action: ActionEquals, Description: "equals", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"esc", "c", "backspace"}, Action: ActionClear, Description: "clear", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"up", "k"}, Action: ActionUp, Description: "focus up", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"down", "j"}, Action: ActionDown, Description: "focus down", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"left", "h"}, Action: ActionLeft, Description: "focus left", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"right", "l"}, Action: ActionRight, Description: "focus right", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{" "}, Action: ActionPress, Description: "press", Scopes: []string{ScopeKeypad}},
		KeyBinding{Keys: []string{"?"}, Action: ActionHelp, Description: "help", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"esc", "?", "q"}, Action: ActionHelp, Description: "close", Scopes: []string{ScopeHelp}},
		KeyBinding{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
	)
}

// ApplyOverrides replaces the keys of every binding whose action appears in
// actionKeys. Unknown actions are an error naming the closest known action.
func ApplyOverrides(bindings []KeyBinding, actionKeys map[string][]string) ([]KeyBinding, error) {
	known := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	actions := make([]string, 0, len(actionKeys))
	for a := range actionKeys {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	for _, a := range actions {
		if !known[a] {
			return nil, fmt.Errorf("keys.%s: unknown action (did you mean %q?)", a, closestAction(a, bindings))
		}
	}

	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out, nil
}

func closestAction(name string, bindings []KeyBinding) string {
	best, bestDist := "", -1
	for _, b := range bindings {
		d := levenshtein.ComputeDistance(name, b.Action)
		if bestDist < 0 || d < bestDist {
			best, bestDist = b.Action, d
		}
	}
	return best
}
