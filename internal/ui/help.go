package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpContent renders the full keybinding reference paged by ov
func helpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Trove Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move cursor")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter, l"), descStyle.Render("Open folder / view conversation")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Bksp, h"), descStyle.Render("Up one level")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Tab"), descStyle.Render("Next project")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Space"), descStyle.Render("Toggle selection at cursor")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("a"), descStyle.Render("Select all visible items")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear selection")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Click"), descStyle.Render("Select item (Ctrl toggles, Shift adds)")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Drag"), descStyle.Render("Rubber-band over empty space, move items from a row")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Clipboard"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("x"), descStyle.Render("Cut selection")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("c"), descStyle.Render("Copy selection")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("v"), descStyle.Render("Paste into current container")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Workspace"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("n"), descStyle.Render("New folder")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("r"), descStyle.Render("Rename item at cursor")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("d"), descStyle.Render("Delete selection (with confirm)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("?"), descStyle.Render("This help")))
	help.WriteString(fmt.Sprintf("  %s          %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
