package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trove/internal/domain"
	"trove/internal/ui/services/contextmenu"
)

// HeaderHeight is the number of lines above the first item row. The
// model uses it to translate terminal coordinates into container-local
// points, so it must match what Render draws.
const HeaderHeight = 2

// DropState mirrors the drag controller's target state for one row
type DropState int

const (
	DropNone DropState = iota
	DropOK
	DropRejected
)

// Row is one rendered line of the container view
type Row struct {
	Ref      domain.EntityRef
	Selected bool
	Cursor   bool
	Cut      bool // staged in a cut slot
	Dragged  bool
	Drop     DropState
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	ProjectName    string
	Breadcrumb     string
	Rows           []Row
	ViewportOffset int
	ViewportHeight int

	Band    *domain.Rect // rubber-band overlay, nil when inactive
	DragTag string       // ghost label while a drag session is live

	Menu       *contextmenu.Menu
	MenuAt     domain.Point
	MenuCursor int

	StatusMessage string
	StatusIsError bool
	PromptLabel   string // non-empty while a text-entry mode is active
	PromptView    string
	HelpView      string
}

// Renderer draws the container view
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new view renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the full frame
func (r *Renderer) Render(vs ViewState) string {
	var b strings.Builder

	title := r.styles.Title.Render("trove")
	crumb := r.styles.Breadcrumb.Render(vs.ProjectName + vs.Breadcrumb)
	b.WriteString(title + "  " + crumb + "\n")
	b.WriteString(r.styles.Dim.Render(strings.Repeat("─", max(vs.Width, 1))) + "\n")

	b.WriteString(r.renderRows(vs))

	if vs.DragTag != "" {
		b.WriteString(r.styles.DragGhost.Render("⇢ "+vs.DragTag) + "\n")
	}

	if vs.Menu != nil {
		b.WriteString(r.renderMenu(vs.Menu, vs.MenuCursor) + "\n")
	}

	if vs.PromptLabel != "" {
		b.WriteString(r.styles.PromptLabel.Render(vs.PromptLabel+": ") + vs.PromptView + "\n")
	}

	if vs.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if vs.StatusIsError {
			style = r.styles.StatusError
		}
		b.WriteString(style.Render(vs.StatusMessage) + "\n")
	}

	if vs.HelpView != "" {
		b.WriteString(r.styles.Help.Render(vs.HelpView))
	}

	return b.String()
}

// renderRows draws the visible slice of item rows, applying selection,
// cursor, cut, drag and drop-target styling, plus the rubber-band
// overlay on rows the band currently covers.
func (r *Renderer) renderRows(vs ViewState) string {
	var b strings.Builder

	start := vs.ViewportOffset
	end := start + vs.ViewportHeight
	if end > len(vs.Rows) {
		end = len(vs.Rows)
	}
	if start > end {
		start = end
	}

	if len(vs.Rows) == 0 {
		b.WriteString(r.styles.Dim.Render("  (empty)") + "\n")
		return b.String()
	}

	for i := start; i < end; i++ {
		row := vs.Rows[i]

		marker := "  "
		if row.Cursor {
			marker = "> "
		}
		check := "  "
		if row.Selected {
			check = "◼ "
		}

		line := fmt.Sprintf("%s%s%s %s", marker, check, KindGlyph(string(row.Ref.Kind)), row.Ref.Name)

		style := lipgloss.NewStyle()
		switch {
		case row.Drop == DropOK:
			style = r.styles.DropValid
		case row.Drop == DropRejected:
			style = r.styles.DropInvalid
		case row.Dragged:
			style = r.styles.DragGhost
		case row.Cut:
			style = r.styles.CutRow
		case row.Selected:
			style = r.styles.SelectedRow
		}
		if row.Cursor {
			style = style.Bold(true)
		}

		// Rows covered by the band get the overlay background unless a
		// stronger drop style already applies.
		if vs.Band != nil && row.Drop == DropNone && !row.Selected {
			rowRect := domain.Rect{X: 0, Y: i, Width: max(vs.Width, 1), Height: 1}
			if vs.Band.Intersects(rowRect) {
				style = style.Background(r.styles.BandOverlay.GetBackground())
			}
		}

		b.WriteString(style.Render(line) + "\n")
	}

	if end < len(vs.Rows) {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  ↓ %d more", len(vs.Rows)-end)) + "\n")
	}

	return b.String()
}

// renderMenu draws the context-menu popup
func (r *Renderer) renderMenu(menu *contextmenu.Menu, cursor int) string {
	var lines []string
	for i, entry := range menu.Entries {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		if entry.Disabled {
			lines = append(lines, r.styles.MenuDisabled.Render(marker+entry.Label))
			continue
		}
		style := r.styles.MenuEntry
		if i == cursor {
			style = style.Bold(true)
		}
		lines = append(lines, style.Render(marker+entry.Label))
	}
	return r.styles.MenuBox.Render(strings.Join(lines, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
