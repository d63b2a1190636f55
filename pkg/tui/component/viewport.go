// ABOUTME: Viewport scrolls a window over styled lines in both directions
// ABOUTME: Horizontal scrolling uses strict column slicing so wide clusters never overflow the edge

package component

import (
	"strings"

	"github.com/mauromedda/pi-natives-go/pkg/tui"
	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

// Viewport shows Height rows of its lines starting at YOffset, each cut to
// the render width starting at column XOffset.
type Viewport struct {
	lines   []string
	widest  int
	xOffset int
	yOffset int
	Height  int
}

// NewViewport creates a Viewport over lines showing height rows.
func NewViewport(lines []string, height int) *Viewport {
	v := &Viewport{Height: height}
	v.SetLines(lines)
	return v
}

// SetLines replaces the content and keeps offsets in range.
func (v *Viewport) SetLines(lines []string) {
	v.lines = lines
	v.widest = 0
	for _, l := range lines {
		v.widest = max(v.widest, width.VisibleWidth(l))
	}
	v.ScrollTo(v.xOffset, v.yOffset)
}

// Offsets returns the current column and row offsets.
func (v *Viewport) Offsets() (x, y int) {
	return v.xOffset, v.yOffset
}

// ContentWidth returns the visible width of the widest line.
func (v *Viewport) ContentWidth() int {
	return v.widest
}

// LineCount returns the number of content lines.
func (v *Viewport) LineCount() int {
	return len(v.lines)
}

// ScrollTo moves the viewport, clamping to the content.
func (v *Viewport) ScrollTo(x, y int) {
	v.xOffset = min(max(x, 0), max(v.widest-1, 0))
	v.yOffset = min(max(y, 0), max(len(v.lines)-v.Height, 0))
}

// ScrollBy moves the viewport relative to its current position.
func (v *Viewport) ScrollBy(dx, dy int) {
	v.ScrollTo(v.xOffset+dx, v.yOffset+dy)
}

// Render writes Height rows, each exactly w columns wide.
func (v *Viewport) Render(out *tui.RenderBuffer, w int) {
	if w <= 0 {
		return
	}
	for row := 0; row < v.Height; row++ {
		idx := v.yOffset + row
		if idx >= len(v.lines) {
			out.WriteLine(strings.Repeat(" ", w))
			continue
		}
		s := width.SliceWithWidth(v.lines[idx], v.xOffset, w, true)
		line := s.Text
		if strings.IndexByte(line, '\x1b') >= 0 {
			line += "\x1b[0m"
		}
		if s.Width < w {
			line += strings.Repeat(" ", w-s.Width)
		}
		out.WriteLine(line)
	}
}

// Invalidate is a no-op; the viewport has no render cache.
func (v *Viewport) Invalidate() {}
