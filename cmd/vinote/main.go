package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmaftei/vinote/internal/notes"
	"github.com/dmaftei/vinote/tui"
)

func defaultNotesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "notes"
	}
	return filepath.Join(home, ".vinote")
}

func main() {
	dir := flag.String("dir", defaultNotesDir(), "notes directory")
	theme := flag.String("theme", "dark", "color theme (dark or light)")
	flag.Parse()

	store, err := notes.New(*dir)
	if err != nil {
		log.Fatalf("opening notes directory: %v", err)
	}

	model, err := tui.New(store, tui.ThemeByName(*theme))
	if err != nil {
		log.Fatalf("initializing ui: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("running program: %v", err)
	}
}
