// ABOUTME: VisibleWidth computes display width of strings with grapheme-aware segmentation
// ABOUTME: Escape sequences are skipped; tabs count 3 columns; results saturate instead of overflowing

package width

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabWidth is the fixed width of a tab cluster. Tab stops are not modeled.
const TabWidth = 3

// MaxWidth is the largest width any function in this package reports.
const MaxWidth = min(math.MaxUint32, math.MaxInt)

// cond measures clusters independently of the locale (RUNEWIDTH_EASTASIAN,
// LANG), so ambiguous-width runes are always narrow.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

// VisibleWidth returns the display width of s, accounting for ANSI escape
// sequences (which contribute zero width) and grapheme clusters (which may
// be wider than one cell for East Asian characters and emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	// Fast path: pure ASCII with no escape sequences
	if isPlainASCII(s) {
		return min(len(s), MaxWidth)
	}
	w := 0
	i := 0
	for i < len(s) {
		if n, ok := ANSICodeLen(s, i); ok {
			i += n
			continue
		}
		next := nextANSIStart(s, i+1)
		w = addWidth(w, runWidth(s[i:next]))
		i = next
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E)
// with no escape sequences.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// runWidth sums the cluster widths of a run that holds no recognized escapes.
func runWidth(run string) int {
	w := 0
	state := -1
	var cluster string
	for len(run) > 0 {
		cluster, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
		w = addWidth(w, graphemeWidth(cluster))
	}
	return w
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if cluster == "\t" {
		return TabWidth
	}
	return max(cond.StringWidth(cluster), 0)
}

// addWidth adds two non-negative widths, saturating at MaxWidth.
func addWidth(a, b int) int {
	if a >= MaxWidth-b {
		return MaxWidth
	}
	return a + b
}
