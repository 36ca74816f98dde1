package logstream

import (
	"sync"
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// buffer is one in-flight log message: the accumulated line, the severity
// it was created at and the separator/quoting flags the append path reads.
// Identity matters for pool bookkeeping, so a buffer is only ever handed
// around by pointer.
type buffer struct {
	b     *bytebufferpool.ByteBuffer
	level Level
	space bool
	quote bool
	refs  atomic.Int32
}

// bufferPool recycles buffer records between messages. sync.Pool keeps a
// lock-free per-P cache, so the common acquire/release cycle never touches
// a shared freelist. The pool never shrinks on its own; buffers are cheap
// and reuse is the point.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return &buffer{}
	},
}

// acquireBuffer checks a buffer out of the pool and resets it for a new
// message at the given level. The byte storage comes from bytebufferpool,
// which calibrates capacity to the observed line sizes.
func acquireBuffer(level Level) *buffer {
	buf := bufferPool.Get().(*buffer)
	buf.b = bytebufferpool.Get()
	buf.level = level
	buf.space = true
	buf.quote = false
	buf.refs.Store(1)
	return buf
}

// releaseBuffer returns a flushed buffer to the pool. The byte storage goes
// back to bytebufferpool first so the record in the pool holds no line data.
func releaseBuffer(buf *buffer) {
	bytebufferpool.Put(buf.b)
	buf.b = nil
	bufferPool.Put(buf)
}
