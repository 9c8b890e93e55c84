package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMochaTheme returns the Catppuccin Mocha theme
// A soothing pastel theme for cozy TUIs
// Based on: https://github.com/catppuccin/catppuccin
func CatppuccinMochaTheme() Theme {
	return Theme{
		Name: "catppuccin-mocha",

		Background: lipgloss.Color("#1e1e2e"), // Base
		Foreground: lipgloss.Color("#cdd6f4"), // Text

		StatusBar: lipgloss.Color("#313244"), // Surface0
		Prompt:    lipgloss.Color("#cdd6f4"), // Text
		Error:     lipgloss.Color("#f38ba8"), // Red
		Info:      lipgloss.Color("#89dceb"), // Sky

		LineNumber:       lipgloss.Color("#6c7086"), // Overlay0
		LineNumberActive: lipgloss.Color("#89dceb"), // Sky

		JSONPunctuation: lipgloss.Color("#cdd6f4"), // Text
		JSONKey:         lipgloss.Color("#89b4fa"), // Blue
		JSONString:      lipgloss.Color("#a6e3a1"), // Green
		JSONRef:         lipgloss.Color("#fab387"), // Peach
		JSONNumber:      lipgloss.Color("#fab387"), // Peach
		JSONBoolean:     lipgloss.Color("#f9e2af"), // Yellow
		JSONNull:        lipgloss.Color("#6c7086"), // Overlay0
	}
}
