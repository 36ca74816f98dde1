package logstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireBufferResetsState(t *testing.T) {
	buf := acquireBuffer(WarningLevel)
	buf.b.WriteString("leftover")
	buf.space = false
	buf.quote = true
	releaseBuffer(buf)

	buf = acquireBuffer(ErrorLevel)
	defer releaseBuffer(buf)

	assert.Equal(t, ErrorLevel, buf.level)
	assert.True(t, buf.space, "separator flag must reset to default")
	assert.False(t, buf.quote, "quote flag must reset to default")
	assert.Zero(t, buf.b.Len(), "byte storage must come back empty")
	assert.Equal(t, int32(1), buf.refs.Load())
}

func TestBufferPoolReusesIdentity(t *testing.T) {
	first := acquireBuffer(InfoLevel)
	releaseBuffer(first)

	for i := 0; i < 100; i++ {
		buf := acquireBuffer(InfoLevel)
		require.Same(t, first, buf, "cycle %d handed out a fresh buffer", i)
		releaseBuffer(buf)
	}
}

func TestBufferPoolHighWaterMark(t *testing.T) {
	// With at most two buffers live at a time, reuse must keep the
	// identity count at the high-water mark.
	seen := map[*buffer]struct{}{}

	for i := 0; i < 50; i++ {
		a := acquireBuffer(InfoLevel)
		b := acquireBuffer(InfoLevel)
		seen[a] = struct{}{}
		seen[b] = struct{}{}
		releaseBuffer(a)
		releaseBuffer(b)
	}

	assert.LessOrEqual(t, len(seen), 2)
}
