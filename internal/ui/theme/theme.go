package theme

import (
	"github.com/charmbracelet/lipgloss"

	"jv/internal/jsondoc"
	"jv/internal/view"
)

// Theme defines the color scheme and styling
type Theme struct {
	Name string

	// Background colors
	Background lipgloss.Color
	Foreground lipgloss.Color

	// Status line
	StatusBar lipgloss.Color
	Prompt    lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Gutter
	LineNumber       lipgloss.Color
	LineNumberActive lipgloss.Color

	// JSON token colors
	JSONPunctuation lipgloss.Color
	JSONKey         lipgloss.Color
	JSONString      lipgloss.Color
	JSONRef         lipgloss.Color
	JSONNumber      lipgloss.Color
	JSONBoolean     lipgloss.Color
	JSONNull        lipgloss.Color
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMochaTheme()
	default:
		return DefaultTheme()
	}
}

// Palette builds the JSON token palette for this theme. Path references get
// an underline on top of their color so they stand out as jump targets.
func (t Theme) Palette() *jsondoc.Palette {
	return &jsondoc.Palette{
		Punctuation: lipgloss.NewStyle().Foreground(t.JSONPunctuation),
		Key:         lipgloss.NewStyle().Foreground(t.JSONKey),
		String:      lipgloss.NewStyle().Foreground(t.JSONString),
		Ref:         lipgloss.NewStyle().Foreground(t.JSONRef).Underline(true),
		Number:      lipgloss.NewStyle().Foreground(t.JSONNumber),
		Boolean:     lipgloss.NewStyle().Foreground(t.JSONBoolean),
		Null:        lipgloss.NewStyle().Foreground(t.JSONNull),
	}
}

// ViewStyles builds the viewport styles for this theme.
func (t Theme) ViewStyles() view.Styles {
	return view.Styles{
		LineNumber:       lipgloss.NewStyle().Foreground(t.LineNumber),
		ActiveLineNumber: lipgloss.NewStyle().Foreground(t.LineNumberActive).Bold(true),
		Cursor:           lipgloss.NewStyle().Reverse(true),
	}
}
