package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmaftei/vinote/engine"
)

// Theme groups the lipgloss styles used across the list and editor
// views. Two built-in themes ship with the app; the chroma style name
// drives syntax highlighting to match.
type Theme struct {
	Name string

	NormalModeStyle  lipgloss.Style
	InsertModeStyle  lipgloss.Style
	CommandModeStyle lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	CursorStyle      lipgloss.Style
	TitleStyle       lipgloss.Style
	HintStyle        lipgloss.Style

	ChromaStyle string
}

var DarkTheme = Theme{
	Name: "dark",

	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	CommandModeStyle: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	TitleStyle:       lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Padding(0, 1),
	HintStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

	ChromaStyle: "catppuccin-mocha",
}

var LightTheme = Theme{
	Name: "light",

	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231")),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231")),
	CommandModeStyle: lipgloss.NewStyle().Background(lipgloss.Color("130")).Foreground(lipgloss.Color("231")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("235")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	TitleStyle:       lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231")).Padding(0, 1),
	HintStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("246")),

	ChromaStyle: "catppuccin-latte",
}

// ThemeByName resolves a theme flag value, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme
	}
	return DarkTheme
}

// modeStyle picks the status-line style for an editor mode.
func (t Theme) modeStyle(mode engine.Mode) lipgloss.Style {
	switch mode {
	case engine.ModeInsert:
		return t.InsertModeStyle
	case engine.ModeCommand:
		return t.CommandModeStyle
	default:
		return t.NormalModeStyle
	}
}
