package theme

import "github.com/charmbracelet/lipgloss"

// DefaultTheme returns the default dark theme
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		Background: lipgloss.Color("235"),
		Foreground: lipgloss.Color("252"),

		StatusBar: lipgloss.Color("237"),
		Prompt:    lipgloss.Color("252"),
		Error:     lipgloss.Color("196"),
		Info:      lipgloss.Color("75"),

		LineNumber:       lipgloss.Color("243"),
		LineNumberActive: lipgloss.Color("123"),

		JSONPunctuation: lipgloss.Color("252"),
		JSONKey:         lipgloss.Color("117"),
		JSONString:      lipgloss.Color("180"),
		JSONRef:         lipgloss.Color("215"),
		JSONNumber:      lipgloss.Color("150"),
		JSONBoolean:     lipgloss.Color("75"),
		JSONNull:        lipgloss.Color("244"),
	}
}
