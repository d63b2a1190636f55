// ABOUTME: Cross-cutting properties of the width operations over a shared corpus
// ABOUTME: Uses charmbracelet/x/ansi as an independent oracle for visible content

package width

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// corpus holds lines with only well-formed SGR/OSC sequences.
var corpus = []string{
	"",
	"plain ascii line",
	"\x1b[1;31mbold red\x1b[0m then plain",
	"你好，世界 mixed with ascii",
	"tabs\tand\tmore",
	"éé combining",
	"\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\ and \x1b[4munderline\x1b[24m",
	"\x1b[38;2;255;128;0morange\x1b[48;5;236m on grey\x1b[m",
	"emoji 👋 in 🌍 text",
}

var escapes = []string{
	"\x1b[0m",
	"\x1b[1;4;38;5;99m",
	"\x1b[2K",
	"\x1b]0;title\x07",
	"\x1b]8;;u\x1b\\",
}

func TestProperty_EscapeInsertionKeepsWidth(t *testing.T) {
	t.Parallel()

	for _, text := range corpus {
		base := VisibleWidth(text)
		for i := range len(text) + 1 {
			if i < len(text) && !isRuneStart(text[i]) {
				continue
			}
			if i > 0 && i < len(text) && insideEscape(text, i) {
				continue
			}
			for _, e := range escapes {
				in := text[:i] + e + text[i:]
				if got := VisibleWidth(in); got != base {
					t.Errorf("VisibleWidth(%q) = %d, want %d", in, got, base)
				}
			}
		}
	}
}

func TestProperty_FullStrictSliceKeepsContent(t *testing.T) {
	t.Parallel()

	for _, line := range corpus {
		w := VisibleWidth(line)
		got := SliceWithWidth(line, 0, w, true)
		if got.Width != w {
			t.Errorf("SliceWithWidth(%q, 0, %d, true).Width = %d", line, w, got.Width)
		}
		if a, b := ansi.Strip(got.Text), ansi.Strip(line); a != b {
			t.Errorf("visible content %q, want %q", a, b)
		}
		if strings.ContainsRune(line, '\t') {
			continue
		}
		if a, b := StripANSI(line), ansi.Strip(line); a != b {
			t.Errorf("StripANSI(%q) = %q, oracle says %q", line, a, b)
		}
	}
}

func TestProperty_StrictSliceNeverExceedsLength(t *testing.T) {
	t.Parallel()

	for li, line := range corpus {
		total := VisibleWidth(line)
		for start := 0; start <= total; start++ {
			for length := 0; length <= 6; length++ {
				got := SliceWithWidth(line, start, length, true)
				if got.Width > length {
					t.Errorf("line %d: SliceWithWidth(_, %d, %d, true).Width = %d", li, start, length, got.Width)
				}
				if vw := VisibleWidth(got.Text); vw != got.Width {
					t.Errorf("line %d: reported width %d, measured %d (%q)", li, got.Width, vw, got.Text)
				}
			}
		}
	}
}

func TestProperty_SegmentsCoverLine(t *testing.T) {
	t.Parallel()

	// Splitting an ASCII-only line at any column and rejoining the visible
	// text of both halves gives back the whole line.
	line := "\x1b[1mbold\x1b[0m plain \x1b[32mgreen\x1b[39m end"
	total := VisibleWidth(line)
	for cut := 0; cut <= total; cut++ {
		t.Run(fmt.Sprintf("cut%d", cut), func(t *testing.T) {
			t.Parallel()
			seg := ExtractSegments(line, cut, cut, total-cut, true)
			if seg.BeforeWidth+seg.AfterWidth != total {
				t.Errorf("widths %d+%d, want %d", seg.BeforeWidth, seg.AfterWidth, total)
			}
			if got, want := ansi.Strip(seg.Before)+ansi.Strip(seg.After), ansi.Strip(line); got != want {
				t.Errorf("rejoined %q, want %q", got, want)
			}
		})
	}
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// insideEscape reports whether offset i falls strictly inside a recognized sequence.
func insideEscape(s string, i int) bool {
	for j := 0; j < len(s); {
		if n, ok := ANSICodeLen(s, j); ok {
			if i > j && i < j+n {
				return true
			}
			j += n
			continue
		}
		j++
	}
	return false
}
