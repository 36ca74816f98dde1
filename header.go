package logstream

import (
	"fmt"
	"os"
	"time"
)

// maxHeaderLen bounds the header scratch area. Oversized prefixes are
// silently truncated rather than rejected.
const maxHeaderLen = 127

// pid is captured once; it cannot change for the lifetime of the process.
var pid = os.Getpid()

// formatHeader renders the fixed-layout message header:
//
//	<appPrefix><DD>.<MM>.<YYYY> <HH>:<MM>:<SS>.<mmm> <C> [<pid>] <msgPrefix>:
//
// followed by a single trailing space. The level marker comes from
// Level.Char, the timestamp is local wall-clock time with millisecond
// precision. The result never exceeds maxHeaderLen bytes; anything past
// that is dropped.
func formatHeader(level Level, now time.Time, procID int, appPrefix, msgPrefix string) []byte {
	year, month, day := now.Date()
	hour, min, sec := now.Clock()
	ms := now.Nanosecond() / 1e6

	header := fmt.Appendf(make([]byte, 0, maxHeaderLen+32),
		"%s%02d.%02d.%04d %02d:%02d:%02d.%03d %c [%d] %s: ",
		appPrefix, day, int(month), year, hour, min, sec, ms,
		level.Char(), procID, msgPrefix)

	if len(header) > maxHeaderLen {
		header = header[:maxHeaderLen]
	}
	return header
}

// writeHeader seeds buf with the header for a message created now, using
// the current registry prefixes. The prefix snapshot is taken before
// formatting so the lock is never held while bytes are produced.
func writeHeader(buf *buffer, level Level) {
	appPrefix, msgPrefix := prefixSnapshot()
	buf.b.Write(formatHeader(level, time.Now(), pid, appPrefix, msgPrefix))
}
