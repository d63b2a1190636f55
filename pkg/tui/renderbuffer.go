// ABOUTME: Pooled line buffer for TUI rendering; recycled via sync.Pool
// ABOUTME: Components write rows here; hosts composite overlays and join rows into a frame

package tui

import (
	"strings"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			Lines: make([]string, 0, 64),
		}
	},
}

// AcquireBuffer gets a RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer is a line buffer that components write into, one row per line.
type RenderBuffer struct {
	Lines []string
}

// WriteLine appends a single line to the buffer.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// Grow appends empty lines until the buffer holds at least n rows.
func (b *RenderBuffer) Grow(n int) {
	for len(b.Lines) < n {
		b.Lines = append(b.Lines, "")
	}
}

// Truncate keeps at most n rows.
func (b *RenderBuffer) Truncate(n int) {
	if n >= 0 && len(b.Lines) > n {
		b.Lines = b.Lines[:n]
	}
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines in the buffer.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}

// String joins the rows with newlines.
func (b *RenderBuffer) String() string {
	return strings.Join(b.Lines, "\n")
}
