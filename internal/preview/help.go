package preview

import (
	"strings"

	"github.com/dshills/plotview/internal/chart"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/widget"
)

// HelpTitle is the title of the help dialog.
const HelpTitle = "Help"

// helpKeys lists key bindings in display order.
var helpKeys = [][2]string{
	{"Ctrl+R", "Plot the document"},
	{"Ctrl+N", "Reset: clear the document and the chart"},
	{"Ctrl+P", "Prettify the document"},
	{"Ctrl+Y", "Copy the document"},
	{"Ctrl+E", "Export the chart as an image"},
	{"Tab", "Indent in the editor, next field in the size fields"},
	{"Shift+Tab", "Move focus: editor, width, height"},
	{"Enter", "Commit a size field"},
	{"F1", "Toggle this help"},
	{"Esc", "Close this help"},
	{"Ctrl+Q", "Quit"},
}

// HelpText returns the static help content.
func HelpText() string {
	var sb strings.Builder
	sb.WriteString("Keys\n")
	for _, k := range helpKeys {
		sb.WriteString("  ")
		sb.WriteString(k[0])
		sb.WriteString(strings.Repeat(" ", max(11-len(k[0]), 1)))
		sb.WriteString(k[1])
		sb.WriteByte('\n')
	}
	sb.WriteString("\nDocument\n")
	sb.WriteString(`  {"data": [traces], "layout": {...}, "config": {...}}` + "\n")
	sb.WriteString("  data must be an array. layout and config are optional.\n")
	sb.WriteString("  Width and height in layout are replaced by the applied size.\n")
	sb.WriteString("\nTrace types\n  ")
	sb.WriteString(strings.Join(chart.SupportedTypes, ", "))
	sb.WriteString("\n\nMouse\n")
	sb.WriteString("  Drag the divider to resize the panes. Scroll with the wheel.")
	return sb.String()
}

// HelpStyles are the styles of the help dialog.
type HelpStyles struct {
	Border core.Style
	Text   core.Style
}

// Help is the help dialog. It has no data dependency.
type Help struct {
	open   bool
	scroll int
	lines  int
	page   int
}

// Open shows the dialog from the top.
func (h *Help) Open() {
	h.open = true
	h.scroll = 0
}

// Close hides the dialog.
func (h *Help) Close() {
	h.open = false
}

// Toggle opens a closed dialog and closes an open one.
func (h *Help) Toggle() {
	if h.open {
		h.Close()
	} else {
		h.Open()
	}
}

// IsOpen reports whether the dialog is shown.
func (h *Help) IsOpen() bool {
	return h.open
}

// HandleKey handles a key while the dialog is open. Esc and F1 close it;
// arrows and paging scroll. It reports whether the key was consumed.
func (h *Help) HandleKey(ev backend.Event) bool {
	if !h.open {
		return false
	}
	switch ev.Key {
	case backend.KeyEscape, backend.KeyF1:
		h.Close()
	case backend.KeyUp:
		h.ScrollBy(-1)
	case backend.KeyDown:
		h.ScrollBy(1)
	case backend.KeyPageUp:
		h.ScrollBy(-max(h.page, 1))
	case backend.KeyPageDown:
		h.ScrollBy(max(h.page, 1))
	}
	// The dialog is modal: every key stops here.
	return true
}

// ScrollBy moves the content by delta lines.
func (h *Help) ScrollBy(delta int) {
	h.scroll = min(max(h.scroll+delta, 0), max(h.lines-h.page, 0))
}

// Draw renders the dialog centred in screen. Lines wider than the screen
// are truncated rather than wrapped so the key column stays aligned.
func (h *Help) Draw(b backend.Backend, screen core.ScreenRect, styles HelpStyles) {
	if !h.open {
		return
	}
	lines := strings.Split(HelpText(), "\n")
	w := 0
	for _, line := range lines {
		w = max(w, core.StringWidth(line))
	}
	w = min(w+4, screen.Width()-2)
	ht := min(len(lines)+2, screen.Height()-2)
	if w < 6 || ht < 3 {
		return
	}

	inner := widget.DrawBox(b, widget.Centered(screen, w, ht), HelpTitle, styles.Border, styles.Text)
	inner = inner.Inset(0, 1, 0, 1)
	h.page = inner.Height()
	h.lines = len(lines)
	h.ScrollBy(0)

	for i, line := range lines[h.scroll:] {
		y := inner.Top + i
		if y >= inner.Bottom {
			break
		}
		widget.DrawText(b, inner.Left, y, inner.Right, widget.Truncate(line, inner.Width()), styles.Text)
	}
}
