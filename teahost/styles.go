package teahost

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of a deck.
type Styles struct {
	Text    lipgloss.Style
	Border  lipgloss.Style
	Current lipgloss.Style
	Held    lipgloss.Style
	Title   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default deck styles.
func DefaultStyles() Styles {
	return Styles{
		Text:    lipgloss.NewStyle(),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Current: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Held:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Title:   lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
	}
}

func (s Styles) of(kind cellKind) lipgloss.Style {
	switch kind {
	case kindBorder:
		return s.Border
	case kindCurrent:
		return s.Current
	case kindHeld:
		return s.Held
	case kindTitle:
		return s.Title
	case kindHelp:
		return s.Help
	default:
		return s.Text
	}
}
