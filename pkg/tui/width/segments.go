// ABOUTME: ExtractSegments splits a line into before/after fragments around an overlay window
// ABOUTME: The after fragment starts with the SGR state in effect at its first column

package width

import (
	"github.com/mauromedda/pi-natives-go/pkg/tui/internal/ansitrack"
	"github.com/mauromedda/pi-natives-go/pkg/tui/internal/pool"
	"github.com/rivo/uniseg"
)

// SegmentsResult holds the fragments of a line on either side of an overlay.
type SegmentsResult struct {
	Before      string
	BeforeWidth int
	After       string
	AfterWidth  int
}

// ExtractSegments returns the columns [0, beforeEnd) as Before and, when
// afterLen > 0, the columns [afterStart, afterStart+afterLen) as After.
//
// Before follows the SliceWithWidth rules without strict fitting. After is
// prefixed with the minimal SGR sequence reproducing the style active at
// its first emitted cluster; escapes inside the after window are copied
// once the fragment has started. strictAfter drops a trailing cluster that
// would cross the end of the after window.
func ExtractSegments(line string, beforeEnd, afterStart, afterLen int, strictAfter bool) SegmentsResult {
	beforeEnd = max(beforeEnd, 0)
	afterStart = max(afterStart, 0)
	afterLen = max(afterLen, 0)
	afterEnd := addWidth(afterStart, afterLen)
	limit := afterEnd
	if afterLen == 0 {
		limit = beforeEnd
	}

	before := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(before)
	after := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(after)
	pending := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(pending)

	var tracker ansitrack.Tracker
	var res SegmentsResult
	afterStarted := false
	col := 0
	i := 0
	for i < len(line) {
		if n, ok := ANSICodeLen(line, i); ok {
			code := line[i : i+n]
			tracker.Process(code)
			if col < beforeEnd {
				pending.WriteString(code)
			} else if afterStarted && col >= afterStart && col < afterEnd {
				after.WriteString(code)
			}
			i += n
			continue
		}

		next := nextANSIStart(line, i+1)
		run := line[i:next]
		state := -1
		var cluster string
		for len(run) > 0 {
			cluster, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
			cw := graphemeWidth(cluster)

			switch {
			case col < beforeEnd:
				if pending.Len() > 0 {
					before.Write(pending.Bytes())
					pending.Reset()
				}
				before.WriteString(cluster)
				res.BeforeWidth = addWidth(res.BeforeWidth, cw)
			case col >= afterStart && col < afterEnd:
				if !strictAfter || col+cw <= afterEnd {
					if !afterStarted {
						after.WriteString(tracker.ActiveCodes())
						afterStarted = true
					}
					after.WriteString(cluster)
					res.AfterWidth = addWidth(res.AfterWidth, cw)
				}
			}

			col = addWidth(col, cw)
			if col >= limit {
				break
			}
		}
		i = next
		if col >= limit {
			break
		}
	}

	res.Before = before.String()
	res.After = after.String()
	return res
}
