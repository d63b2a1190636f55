// ABOUTME: Box component that frames a child with a lipgloss border and padding
// ABOUTME: The child renders at the width left inside the frame; output rows never exceed width

package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pi-natives-go/pkg/tui"
	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

// Box wraps a child component in a lipgloss frame.
type Box struct {
	Child tui.Component
	Style lipgloss.Style
}

// NewBox creates a Box around child with a rounded border and one column
// of horizontal padding.
func NewBox(child tui.Component) *Box {
	return &Box{
		Child: child,
		Style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// Render draws the framed child. Nothing is drawn when the frame leaves no
// room for content.
func (b *Box) Render(out *tui.RenderBuffer, w int) {
	innerWidth := w - b.Style.GetHorizontalFrameSize()
	if innerWidth <= 0 {
		return
	}

	childBuf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(childBuf)

	b.Child.Render(childBuf, innerWidth)
	if childBuf.Len() == 0 {
		return
	}

	framed := b.Style.Render(childBuf.String())
	for _, line := range strings.Split(framed, "\n") {
		out.WriteLine(width.TruncateToWidth(line, w, "", false))
	}
}

// Invalidate invalidates the child.
func (b *Box) Invalidate() {
	if b.Child != nil {
		b.Child.Invalidate()
	}
}
