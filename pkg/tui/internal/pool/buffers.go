// ABOUTME: sync.Pool wrapper for bytes.Buffer used as scratch output by the width operations
// ABOUTME: Buffers are reset on both get and put; callers copy out with String() before returning

package pool

import (
	"bytes"
	"sync"
)

// maxPooledCap keeps one pathological line from pinning a huge buffer in the pool.
const maxPooledCap = 64 << 10

var bytesBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	buf := bytesBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBytesBuffer returns a bytes.Buffer to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledCap {
		return
	}
	buf.Reset()
	bytesBufferPool.Put(buf)
}
