package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/keycalc/internal/config"
	"github.com/jask/keycalc/internal/keypad"
	"github.com/jask/keycalc/internal/logging"
	"github.com/jask/keycalc/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closer.Close()

	bindings, err := keypad.ApplyOverrides(keypad.DefaultKeyBindings(cfg.Separator()), cfg.Keys)
	if err != nil {
		log.Fatalf("keys: %v", err)
	}

	p := tea.NewProgram(tui.New(cfg, keypad.NewKeyRegistry(bindings), logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
