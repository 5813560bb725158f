package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Breadcrumb    lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	CursorRow     lipgloss.Style
	SelectedRow   lipgloss.Style
	CutRow        lipgloss.Style
	DropValid     lipgloss.Style
	DropInvalid   lipgloss.Style
	BandOverlay   lipgloss.Style
	MenuBox       lipgloss.Style
	MenuEntry     lipgloss.Style
	MenuDisabled  lipgloss.Style
	DragGhost     lipgloss.Style
	PromptLabel   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Breadcrumb:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		CursorRow:     lipgloss.NewStyle().Bold(true),
		SelectedRow:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CutRow:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		DropValid:     lipgloss.NewStyle().Background(lipgloss.Color("22")),  // green
		DropInvalid:   lipgloss.NewStyle().Background(lipgloss.Color("52")),  // red
		BandOverlay:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		MenuBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		MenuEntry:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuDisabled: lipgloss.NewStyle().Faint(true),
		DragGhost:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		PromptLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// KindGlyph returns the row marker for an entity kind
func KindGlyph(kind string) string {
	switch kind {
	case "folder":
		return "▸"
	case "file":
		return "·"
	case "conversation":
		return "~"
	default:
		return " "
	}
}
