// ABOUTME: Bubble Tea pager over styled lines with horizontal scrolling and fuzzy search
// ABOUTME: Frames are stacked with a pkg/tui Container (Viewport, status bar) plus an overlay box

package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pi-natives-go/internal/log"
	"github.com/mauromedda/pi-natives-go/pkg/tui"
	"github.com/mauromedda/pi-natives-go/pkg/tui/component"
	"github.com/mauromedda/pi-natives-go/pkg/tui/fuzzy"
	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

const infoBoxWidth = 32

var statusStyle = lipgloss.NewStyle().Reverse(true)

// Model is the pager state. The viewport is shared between copies of the
// model, so Update may be called on any copy.
type Model struct {
	title    string
	lines    []string
	vp       *component.Viewport
	width    int
	height   int
	showInfo bool

	searching bool
	query     string
	matches   []fuzzy.Match
	matchIdx  int
}

// New creates a pager for lines. The first tea.WindowSizeMsg sizes it.
func New(title string, lines []string) Model {
	return Model{
		title: title,
		lines: lines,
		vp:    component.NewViewport(lines, 0),
	}
}

// Init returns nil; no commands needed at startup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizes and navigation keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Height = max(m.height-1, 0)
		m.vp.ScrollBy(0, 0)
		log.Debug("viewer resized to %dx%d", m.width, m.height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	page := max(m.vp.Height-1, 1)
	half := max(m.width/2, 1)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if !m.showInfo {
			return m, tea.Quit
		}
		m.showInfo = false
	case "o":
		m.showInfo = !m.showInfo
	case "/":
		m.searching = true
		m.query = ""
	case "n":
		m = m.jump(m.matchIdx + 1)
	case "N":
		m = m.jump(m.matchIdx - 1)
	case "left", "h":
		m.vp.ScrollBy(-1, 0)
	case "right", "l":
		m.vp.ScrollBy(1, 0)
	case "H":
		m.vp.ScrollBy(-half, 0)
	case "L":
		m.vp.ScrollBy(half, 0)
	case "up", "k":
		m.vp.ScrollBy(0, -1)
	case "down", "j":
		m.vp.ScrollBy(0, 1)
	case "pgup", "b":
		m.vp.ScrollBy(0, -page)
	case "pgdown", "f", " ":
		m.vp.ScrollBy(0, page)
	case "home", "g":
		m.vp.ScrollTo(0, 0)
	case "end", "G":
		x, _ := m.vp.Offsets()
		m.vp.ScrollTo(x, m.vp.LineCount())
	case "0":
		_, y := m.vp.Offsets()
		m.vp.ScrollTo(0, y)
	}
	return m, nil
}

// handleSearchKey edits the query line. Enter runs the search and jumps to
// the best match; esc abandons it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
	case tea.KeyEnter:
		m.searching = false
		m.matches = fuzzy.Lines(m.query, m.lines)
		log.Debug("search %q: %d matches", m.query, len(m.matches))
		m = m.jump(0)
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	}
	return m, nil
}

// jump scrolls match i, wrapping around, to the top of the view where the
// content allows.
func (m Model) jump(i int) Model {
	n := len(m.matches)
	if n == 0 {
		return m
	}
	m.matchIdx = (i%n + n) % n
	x, _ := m.vp.Offsets()
	m.vp.ScrollTo(x, m.matches[m.matchIdx].Line)
	return m
}

// View renders the visible rows, the status line, and the info box when open.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	frame := tui.NewContainer()
	frame.AddRows(m.vp, m.vp.Height)
	frame.Add(statusBar(m.status()))
	frame.Render(buf, m.width)

	// The box starts on the second row and stays above the status line.
	if m.showInfo && m.vp.Height > 1 {
		ow := min(infoBoxWidth, m.width)
		tui.CompositeOverlays(buf, []tui.Overlay{{
			Component: component.NewBox(component.NewTruncatedText(m.info())),
			Position:  tui.OverlayAt,
			Row:       1,
			Col:       m.width - ow - 1,
			Width:     ow,
			Height:    m.vp.Height - 1,
		}}, m.width, m.vp.Height)
	}

	return buf.String()
}

// statusBar is the one-row footer, drawn reversed across the full width.
type statusBar string

func (s statusBar) Render(out *tui.RenderBuffer, w int) {
	out.WriteLine(statusStyle.Render(width.TruncateToWidth(string(s), w, "…", true)))
}

func (statusBar) Invalidate() {}

func (m Model) status() string {
	if m.searching {
		return "/" + m.query
	}
	x, y := m.vp.Offsets()
	s := fmt.Sprintf(" %s  %d/%d  col %d", m.title, y+1, m.vp.LineCount(), x+1)
	if len(m.matches) > 0 {
		s += fmt.Sprintf("  match %d/%d", m.matchIdx+1, len(m.matches))
	}
	return s + "  (/: search, o: info, q: quit)"
}

func (m Model) info() string {
	x, y := m.vp.Offsets()
	last := min(y+m.vp.Height, m.vp.LineCount())
	var b strings.Builder
	fmt.Fprintf(&b, "lines %d-%d of %d\n", min(y+1, last), last, m.vp.LineCount())
	fmt.Fprintf(&b, "columns %d-%d of %d\n", x+1, min(x+m.width, m.vp.ContentWidth()), m.vp.ContentWidth())
	b.WriteString("o or esc to close")
	return b.String()
}
