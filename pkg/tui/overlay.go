// ABOUTME: Overlays rendered on top of main content at a row and column
// ABOUTME: Rows are spliced with ExtractSegments so background styling resumes after the overlay

package tui

import (
	"strings"

	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

const resetSGR = "\x1b[0m"

// OverlayPosition defines where an overlay is rendered.
type OverlayPosition int

const (
	// OverlayCenter centers the overlay on both axes.
	OverlayCenter OverlayPosition = iota
	// OverlayTop anchors the overlay to the first row at Col.
	OverlayTop
	// OverlayBottom anchors the overlay to the last row at Col.
	OverlayBottom
	// OverlayAt places the overlay at Row and Col.
	OverlayAt
)

// Overlay is a component drawn over a region of the main buffer.
type Overlay struct {
	Component Component
	Position  OverlayPosition
	Row       int // OverlayAt only
	Col       int // ignored by OverlayCenter
	Width     int // 0 means use terminal width
	Height    int // 0 means auto-size from render output
}

// CompositeOverlays renders overlays on top of buf, in order, for a
// terminal of w columns and h rows. Background text to the left and right
// of each overlay row is kept with its styling.
func CompositeOverlays(buf *RenderBuffer, overlays []Overlay, w, h int) {
	if w <= 0 {
		return
	}
	for _, o := range overlays {
		ow := o.Width
		if ow <= 0 || ow > w {
			ow = w
		}
		overlayBuf := AcquireBuffer()
		o.Component.Render(overlayBuf, ow)

		oh := overlayBuf.Len()
		if o.Height > 0 && oh > o.Height {
			oh = o.Height
		}

		var startRow, startCol int
		switch o.Position {
		case OverlayCenter:
			startRow = (h - oh) / 2
			startCol = (w - ow) / 2
		case OverlayTop:
			startRow, startCol = 0, o.Col
		case OverlayBottom:
			startRow, startCol = h-oh, o.Col
		case OverlayAt:
			startRow, startCol = o.Row, o.Col
		}
		startRow = max(startRow, 0)
		startCol = min(max(startCol, 0), w-ow)

		buf.Grow(startRow + oh)
		for i := 0; i < oh; i++ {
			row := startRow + i
			buf.Lines[row] = CompositeLine(buf.Lines[row], overlayBuf.Lines[i], startCol, ow, w)
		}

		ReleaseBuffer(overlayBuf)
	}
}

// CompositeLine draws overlay over columns [col, col+ow) of bg, a row of a
// terminal lineWidth columns wide. The overlay is padded or truncated to
// exactly ow columns. Wide clusters cut by either overlay edge are replaced
// by spaces so everything right of the overlay stays column-aligned, and
// the row is as wide as the background, up to lineWidth.
func CompositeLine(bg, overlay string, col, ow, lineWidth int) string {
	afterStart := col + ow
	afterLen := max(lineWidth-afterStart, 0)
	seg := width.ExtractSegments(bg, col, afterStart, afterLen, true)

	before, beforeWidth := seg.Before, seg.BeforeWidth
	if beforeWidth > col {
		cut := width.SliceWithWidth(bg, 0, col, true)
		before, beforeWidth = cut.Text, cut.Width
	}

	var b strings.Builder
	b.Grow(len(bg) + len(overlay) + 3*len(resetSGR) + ow)
	b.WriteString(before)
	if beforeWidth < col {
		b.WriteString(strings.Repeat(" ", col-beforeWidth))
	}
	b.WriteString(resetSGR)
	b.WriteString(width.TruncateToWidth(overlay, ow, "", true))
	b.WriteString(resetSGR)

	end := afterStart
	if seg.AfterWidth > 0 {
		// A cluster straddling afterStart belongs to neither fragment.
		if lead := width.SliceWithWidth(bg, 0, afterStart, false).Width - afterStart; lead > 0 {
			b.WriteString(strings.Repeat(" ", lead))
			end += lead
		}
		b.WriteString(seg.After)
		end += seg.AfterWidth
		if strings.IndexByte(seg.After, '\x1b') >= 0 {
			b.WriteString(resetSGR)
		}
	}
	// Strict cuts can drop every cluster of the after window; the row
	// still reaches as far as the background did.
	if gap := min(width.VisibleWidth(bg), lineWidth) - end; gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
	}
	return b.String()
}
