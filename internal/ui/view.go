package ui

import (
	"strings"

	"github.com/atomicstack/xitems/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// PaintRow renders one item into the row cache. It implements state.Painter.
func (m *Model) PaintRow(row, _ int, it *menu.Item, selected bool) {
	if row < 0 || row >= len(m.rows) {
		return
	}
	text := it.Display
	if it.Width > m.rowWidth {
		text = truncateText(text, m.rowWidth)
	}
	m.rows[row] = m.styles.Row(m.rowWidth, selected).Render(text)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.Done() {
		return ""
	}
	body := strings.Join(m.rows, "\n")
	if m.showFooter {
		body += "\n" + m.footerView()
	}
	panel := m.styles.Panel.Render(body)
	x, y := m.origin()
	return lipgloss.NewStyle().MarginLeft(x).MarginTop(y).Render(panel)
}

func (m *Model) footerView() string {
	inner := m.rowWidth + 2*m.styles.HorizontalPadding
	hint := truncateText(m.help.ShortHelpView(m.keys.ShortHelp()), m.rowWidth)
	return m.styles.Footer.Width(inner).Render(hint)
}

// panelSize returns the outer size of the panel in cells.
func (m *Model) panelSize() (int, int) {
	w := m.rowWidth + 2*m.styles.HorizontalPadding + m.styles.Panel.GetHorizontalFrameSize()
	h := m.session.Height() + m.styles.Panel.GetVerticalFrameSize()
	if m.showFooter {
		h++
	}
	return w, h
}

// origin returns the top-left cell of the panel, pulled back so the panel
// stays on screen once the terminal size is known.
func (m *Model) origin() (int, int) {
	x, y := m.originX, m.originY
	w, h := m.panelSize()
	if m.width > 0 && x+w > m.width {
		x = max(m.width-w, 0)
	}
	if m.height > 0 && y+h > m.height {
		y = max(m.height-h, 0)
	}
	return x, y
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
