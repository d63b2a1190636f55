// ABOUTME: Styled text lines with ellipsis truncation and optional padding to the full width
// ABOUTME: Each row is cut independently; styling before the cut survives, a reset precedes the ellipsis

package component

import (
	"strings"

	"github.com/mauromedda/pi-natives-go/pkg/tui"
	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

// DefaultEllipsis is appended to truncated rows when none is configured.
const DefaultEllipsis = "…"

// TruncatedText renders lines, truncating each with an ellipsis if needed.
type TruncatedText struct {
	lines    []string
	Ellipsis string
	Pad      bool
}

// NewTruncatedText creates a TruncatedText; content may span several lines.
func NewTruncatedText(content string) *TruncatedText {
	t := &TruncatedText{Ellipsis: DefaultEllipsis}
	t.SetContent(content)
	return t
}

// SetContent updates the text.
func (t *TruncatedText) SetContent(content string) {
	t.lines = strings.Split(content, "\n")
}

// Render writes the truncated lines into the buffer.
func (t *TruncatedText) Render(out *tui.RenderBuffer, w int) {
	for _, line := range t.lines {
		out.WriteLine(width.TruncateToWidth(line, w, t.Ellipsis, t.Pad))
	}
}

// Invalidate is a no-op for TruncatedText.
func (t *TruncatedText) Invalidate() {}
