package logstream

import (
	"fmt"
	"strconv"
)

// Texter is the capability a custom type provides to control how Append
// renders it. Quoting and separation stay outside the conversion; LogText
// only produces the token text itself.
type Texter interface {
	LogText() string
}

// Stream is a handle on one in-flight log message. It is obtained from one
// of the level constructors, accumulates tokens through chained calls and
// must be closed exactly once per handle; the last Close dispatches the
// finished line and recycles the buffer.
//
// A Stream created below the current severity level (or denied by the rate
// limiter) is disabled: it holds no buffer, every chained call is a free
// no-op and Close does nothing.
//
// Usage:
//
//	logstream.Info().Append("listening on", addr).Close()
//	logstream.Debug().NoSpace().Append("x=", x).Close()
//	logstream.Warning().Quote().Append(name).Close()
type Stream struct {
	buf *buffer
}

// Debug creates a stream for a debug message.
func Debug() Stream { return newStream(DebugLevel) }

// Info creates a stream for an informational message.
func Info() Stream { return newStream(InfoLevel) }

// Warning creates a stream for a warning.
func Warning() Stream { return newStream(WarningLevel) }

// Error creates a stream for an error message.
func Error() Stream { return newStream(ErrorLevel) }

// Fatal creates a stream for a fatal error. Closing the last handle of a
// fatal stream terminates the process after the line is dispatched.
func Fatal() Stream { return newStream(FatalLevel) }

// newStream gates on the severity filter and the optional rate limiter,
// then seeds a pooled buffer with the formatted header. The filter decision
// is captured here; a later SetSeverityLevel does not affect this message.
func newStream(level Level) Stream {
	if level < SeverityLevel() {
		return Stream{}
	}
	if level != FatalLevel && !rateAllow() {
		return Stream{}
	}

	buf := acquireBuffer(level)
	writeHeader(buf, level)
	return Stream{buf: buf}
}

// Enabled reports whether the stream passed the severity filter and will
// produce output when closed.
func (s Stream) Enabled() bool {
	return s.buf != nil
}

// Space makes subsequent tokens space-separated. This is the default.
func (s Stream) Space() Stream {
	if s.buf != nil {
		s.buf.space = true
	}
	return s
}

// NoSpace makes subsequent tokens run together with no separator.
func (s Stream) NoSpace() Stream {
	if s.buf != nil {
		s.buf.space = false
	}
	return s
}

// Quote wraps each subsequent token in double quotes.
func (s Stream) Quote() Stream {
	if s.buf != nil {
		s.buf.quote = true
	}
	return s
}

// NoQuote stops wrapping tokens in double quotes. This is the default.
func (s Stream) NoQuote() Stream {
	if s.buf != nil {
		s.buf.quote = false
	}
	return s
}

// Append converts each token to text and appends it to the message,
// honoring the separator and quoting flags in effect at the moment of the
// call. Strings and byte slices pass through verbatim; types implementing
// Texter, error or fmt.Stringer use those; booleans, integers and floats
// format through strconv; anything else falls back to fmt.
func (s Stream) Append(tokens ...interface{}) Stream {
	if s.buf == nil {
		return s
	}
	for _, token := range tokens {
		s.buf.appendToken(token)
	}
	return s
}

// Appendf formats once with fmt.Sprintf and appends the result as a single
// token, honoring the separator and quoting flags like Append.
func (s Stream) Appendf(format string, args ...interface{}) Stream {
	if s.buf == nil {
		return s
	}
	s.buf.appendToken(fmt.Sprintf(format, args...))
	return s
}

// Copy returns an additional owning handle sharing this stream's buffer.
// The message is dispatched only when the last handle is closed.
func (s Stream) Copy() Stream {
	if s.buf != nil {
		s.buf.refs.Add(1)
	}
	return s
}

// Close releases this handle. When it is the last one sharing the buffer,
// the accumulated line is dispatched exactly once and the buffer returns
// to the pool. Each handle must be closed exactly once; plain assignment
// of a Stream aliases the handle rather than creating a new one, use Copy
// for an owning copy.
func (s Stream) Close() {
	if s.buf == nil {
		return
	}
	if s.buf.refs.Add(-1) == 0 {
		dispatch(s.buf)
	}
}

func (b *buffer) appendToken(token interface{}) {
	if b.space {
		b.b.WriteByte(' ')
	}
	if b.quote {
		b.b.WriteByte('"')
	}

	b.writeValue(token)

	if b.quote {
		b.b.WriteByte('"')
	}
}

func (b *buffer) writeValue(token interface{}) {
	switch v := token.(type) {
	case string:
		b.b.WriteString(v)
	case []byte:
		b.b.Write(v)
	case Texter:
		b.b.WriteString(v.LogText())
	case error:
		b.b.WriteString(v.Error())
	case fmt.Stringer:
		b.b.WriteString(v.String())
	case bool:
		b.b.B = strconv.AppendBool(b.b.B, v)
	case int:
		b.b.B = strconv.AppendInt(b.b.B, int64(v), 10)
	case int8:
		b.b.B = strconv.AppendInt(b.b.B, int64(v), 10)
	case int16:
		b.b.B = strconv.AppendInt(b.b.B, int64(v), 10)
	case int32:
		b.b.B = strconv.AppendInt(b.b.B, int64(v), 10)
	case int64:
		b.b.B = strconv.AppendInt(b.b.B, v, 10)
	case uint:
		b.b.B = strconv.AppendUint(b.b.B, uint64(v), 10)
	case uint8:
		b.b.B = strconv.AppendUint(b.b.B, uint64(v), 10)
	case uint16:
		b.b.B = strconv.AppendUint(b.b.B, uint64(v), 10)
	case uint32:
		b.b.B = strconv.AppendUint(b.b.B, uint64(v), 10)
	case uint64:
		b.b.B = strconv.AppendUint(b.b.B, v, 10)
	case float32:
		b.b.B = strconv.AppendFloat(b.b.B, float64(v), 'g', -1, 32)
	case float64:
		b.b.B = strconv.AppendFloat(b.b.B, v, 'g', -1, 64)
	default:
		fmt.Fprint(b.b, v)
	}
}
