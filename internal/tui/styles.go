package tui

import "github.com/charmbracelet/lipgloss"

// stylesEnabled controls whether lipgloss styling is applied.
// Disabled via CheckNoColor when NO_COLOR is set.
var stylesEnabled = true //nolint:gochecknoglobals // Process-wide styling toggle

// disableStyles turns off color rendering process-wide.
func disableStyles() {
	stylesEnabled = false
}

// OutputStyles holds the lipgloss styles used by TTYOutput.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewOutputStyles creates the default output styles. When styling is
// disabled the styles render text unchanged.
func NewOutputStyles() *OutputStyles {
	if !stylesEnabled {
		plain := lipgloss.NewStyle()
		return &OutputStyles{Success: plain, Error: plain, Warning: plain, Info: plain}
	}
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
