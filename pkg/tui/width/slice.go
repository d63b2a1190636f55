// ABOUTME: Column-based string slicing with ANSI-awareness
// ABOUTME: SliceWithWidth extracts a visual range and carries forward escapes seen before it

package width

import (
	"github.com/mauromedda/pi-natives-go/pkg/tui/internal/pool"
	"github.com/rivo/uniseg"
)

// SliceResult is the text of a column slice and the visible width it covers.
type SliceResult struct {
	Text  string
	Width int
}

// SliceWithWidth extracts the columns [startCol, startCol+length) of line.
//
// Escape sequences inside the range are copied where they occur. Sequences
// before startCol are buffered verbatim and flushed ahead of the first
// cluster emitted, so styling set earlier in the line still applies. A wide
// cluster that starts in range but ends past the range is dropped when
// strict is set and kept otherwise. Width may be less than length.
func SliceWithWidth(line string, startCol, length int, strict bool) SliceResult {
	startCol = max(startCol, 0)
	endCol := addWidth(startCol, max(length, 0))

	out := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(out)
	pending := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(pending)

	w, col := 0, 0
	i := 0
	for i < len(line) && col < endCol {
		if n, ok := ANSICodeLen(line, i); ok {
			code := line[i : i+n]
			if col >= startCol {
				out.WriteString(code)
			} else {
				pending.WriteString(code)
			}
			i += n
			continue
		}

		next := nextANSIStart(line, i+1)
		run := line[i:next]
		state := -1
		var cluster string
		for len(run) > 0 && col < endCol {
			cluster, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
			cw := graphemeWidth(cluster)
			if col >= startCol && (!strict || col+cw <= endCol) {
				if pending.Len() > 0 {
					out.Write(pending.Bytes())
					pending.Reset()
				}
				out.WriteString(cluster)
				w = addWidth(w, cw)
			}
			col = addWidth(col, cw)
		}
		i = next
	}

	return SliceResult{Text: out.String(), Width: w}
}
