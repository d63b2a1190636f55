// ABOUTME: ANSI-aware truncation with a caller-supplied ellipsis and optional right padding
// ABOUTME: Styling seen before the cut survives; a reset is always emitted before the ellipsis

package width

import (
	"strings"

	"github.com/mauromedda/pi-natives-go/pkg/tui/internal/pool"
	"github.com/rivo/uniseg"
)

// TruncateToWidth truncates text to at most maxWidth visible columns.
//
// Text that already fits is returned unchanged, or right-padded with spaces
// to exactly maxWidth when pad is set. Otherwise clusters are copied until
// the room left after the ellipsis is filled, followed by "\x1b[0m" and the
// ellipsis. Escape sequences met before the cut are copied verbatim.
// If the ellipsis alone is at least maxWidth wide, the result is the
// leading clusters of the ellipsis with the input text discarded.
func TruncateToWidth(text string, maxWidth int, ellipsis string, pad bool) string {
	maxWidth = max(maxWidth, 0)
	textWidth := VisibleWidth(text)
	if textWidth <= maxWidth {
		if pad && textWidth < maxWidth {
			return text + strings.Repeat(" ", maxWidth-textWidth)
		}
		return text
	}

	ellipsisWidth := VisibleWidth(ellipsis)
	target := max(maxWidth-ellipsisWidth, 0)
	if target == 0 {
		return leadingClusters(ellipsis, maxWidth)
	}

	out := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(out)
	out.Grow(len(text) + len(resetSGR) + len(ellipsis))

	w := 0
	i := 0
scan:
	for i < len(text) {
		if n, ok := ANSICodeLen(text, i); ok {
			out.WriteString(text[i : i+n])
			i += n
			continue
		}

		next := nextANSIStart(text, i+1)
		run := text[i:next]
		state := -1
		var cluster string
		for len(run) > 0 {
			cluster, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
			cw := graphemeWidth(cluster)
			if w+cw > target {
				break scan
			}
			out.WriteString(cluster)
			w += cw
		}
		if w >= target {
			break
		}
		i = next
	}

	out.WriteString(resetSGR)
	out.WriteString(ellipsis)
	if pad {
		if used := w + ellipsisWidth; used < maxWidth {
			out.WriteString(strings.Repeat(" ", maxWidth-used))
		}
	}
	return out.String()
}

// leadingClusters returns at most n grapheme clusters from the start of s,
// segmented without regard to escape sequences, stopping early rather than
// exceeding n columns.
func leadingClusters(s string, n int) string {
	end, count, w := 0, 0, 0
	state := -1
	rest := s
	var cluster string
	for len(rest) > 0 && count < n {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := graphemeWidth(cluster)
		if w+cw > n {
			break
		}
		w += cw
		end += len(cluster)
		count++
	}
	return s[:end]
}
