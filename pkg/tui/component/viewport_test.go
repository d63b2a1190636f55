// ABOUTME: Tests for Viewport scrolling and row rendering
// ABOUTME: Rows must always be exactly the render width; offsets clamp to content

package component

import (
	"testing"

	"github.com/mauromedda/pi-natives-go/pkg/tui"
	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

func TestViewport_Render(t *testing.T) {
	t.Parallel()

	lines := []string{
		"\x1b[32mgreen text here\x1b[0m",
		"你好世界",
		"short",
	}
	v := NewViewport(lines, 4)
	v.ScrollTo(1, 0)

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	v.Render(buf, 5)

	if buf.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", buf.Len())
	}
	for i, line := range buf.Lines {
		if w := width.VisibleWidth(line); w != 5 {
			t.Errorf("row %d width = %d, want 5 (%q)", i, w, line)
		}
	}
	if want := "\x1b[32mreen \x1b[0m"; buf.Lines[0] != want {
		t.Errorf("row 0 = %q, want %q", buf.Lines[0], want)
	}
	// Column 1 is the right half of 你, so the strict slice starts at 好.
	if want := "好世 "; buf.Lines[1] != want {
		t.Errorf("row 1 = %q, want %q", buf.Lines[1], want)
	}
	if want := "hort "; buf.Lines[2] != want {
		t.Errorf("row 2 = %q, want %q", buf.Lines[2], want)
	}
}

func TestViewport_ScrollClamps(t *testing.T) {
	t.Parallel()

	v := NewViewport([]string{"abcdef", "gh", "ij", "kl"}, 2)

	tests := []struct {
		name         string
		dx, dy       int
		wantX, wantY int
	}{
		{name: "right", dx: 3, wantX: 3, wantY: 0},
		{name: "past right edge", dx: 10, wantX: 5, wantY: 0},
		{name: "down", dy: 1, wantX: 5, wantY: 1},
		{name: "past bottom", dy: 10, wantX: 5, wantY: 2},
		{name: "back to origin", dx: -99, dy: -99, wantX: 0, wantY: 0},
	}
	for _, tt := range tests {
		v.ScrollBy(tt.dx, tt.dy)
		if x, y := v.Offsets(); x != tt.wantX || y != tt.wantY {
			t.Errorf("%s: Offsets() = (%d, %d), want (%d, %d)", tt.name, x, y, tt.wantX, tt.wantY)
		}
	}

	if v.ContentWidth() != 6 || v.LineCount() != 4 {
		t.Errorf("ContentWidth, LineCount = %d, %d; want 6, 4", v.ContentWidth(), v.LineCount())
	}
}
