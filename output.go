package logstream

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// Handler is a pluggable destination for finished log lines, invoked as
// handler(level, message) with the message excluding the trailing newline.
// A handler is called on the goroutine that closed the stream and must not
// panic.
type Handler func(level Level, message string)

// osExit lets tests stub out process termination on fatal messages.
var osExit = os.Exit

var (
	outputHandler atomic.Pointer[Handler]
	currentTarget atomic.Pointer[target]
	rateLimiter   atomic.Pointer[rate.Limiter]

	logFileMu   sync.Mutex
	logFileName string
)

func init() {
	currentTarget.Store(newTarget(os.Stderr))
}

// target wraps the active log file with a reference count. Every dispatch
// takes one snapshot (load plus acquire) and releases it after the write,
// so a rotation that swaps the target out closes the old handle only once
// its last in-flight writer has finished. The default standard error
// stream is never closed.
type target struct {
	f    *os.File
	refs atomic.Int32
}

func newTarget(f *os.File) *target {
	t := &target{f: f}
	t.refs.Store(1)
	return t
}

// acquire takes a reference unless the target has already been retired.
func (t *target) acquire() bool {
	for {
		n := t.refs.Load()
		if n <= 0 {
			return false
		}
		if t.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (t *target) release() {
	if t.refs.Add(-1) == 0 && t.f != os.Stderr {
		t.f.Close()
	}
}

// SetOutputHandler installs handler as the destination for every dispatched
// line, replacing the file target. Passing nil reverts to writing to the
// file target.
func SetOutputHandler(handler Handler) {
	if handler == nil {
		outputHandler.Store(nil)
		return
	}
	outputHandler.Store(&handler)
}

// SetLogFileName stores path as the log file name and rotates immediately.
// By default messages go to standard error. A failure to open the file is
// reported on the fallback target and the previous destination stays
// active.
func SetLogFileName(path string) {
	logFileMu.Lock()
	logFileName = path
	logFileMu.Unlock()

	RotateFile()
}

// RotateFile reopens the configured log file for append and atomically
// swaps it in as the active target. Call it after the file has been
// renamed or truncated externally, e.g. from a SIGHUP handler driven by
// logrotate. If no file name is configured this is a no-op; if the open
// fails, a diagnostic goes to the fallback target and the current target
// is left unchanged.
func RotateFile() {
	logFileMu.Lock()
	path := logFileName
	logFileMu.Unlock()

	if path == "" {
		return
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file %q: %v\n", path, err)
		return
	}

	swapTarget(newTarget(file))
}

// Close reverts output to the default standard error target, forgets the
// configured file name and closes the previous log file once in-flight
// writes to it finish.
func Close() {
	logFileMu.Lock()
	logFileName = ""
	logFileMu.Unlock()

	swapTarget(newTarget(os.Stderr))
}

func swapTarget(t *target) {
	prev := currentTarget.Swap(t)
	if prev != nil {
		prev.release()
	}
}

// SetMaxLogRate caps message creation at n lines per second with a burst
// of n, dropping the excess as disabled streams. n <= 0 removes the cap.
// Fatal messages are never dropped.
func SetMaxLogRate(n int) {
	if n <= 0 {
		rateLimiter.Store(nil)
		return
	}
	rateLimiter.Store(rate.NewLimiter(rate.Limit(n), n))
}

func rateAllow() bool {
	lim := rateLimiter.Load()
	return lim == nil || lim.Allow()
}

// dispatch delivers a finished line to the installed handler, or writes it
// with a trailing newline to the current file target. The file write is a
// single unbuffered syscall, so the line is out of the process before
// dispatch returns and survives an immediate crash. A fatal message
// terminates the process after delivery.
func dispatch(buf *buffer) {
	level := buf.level

	if h := outputHandler.Load(); h != nil {
		line := string(buf.b.B)
		releaseBuffer(buf)
		(*h)(level, line)
	} else {
		buf.b.WriteByte('\n')
		writeToTarget(buf.b.B)
		releaseBuffer(buf)
	}

	if level == FatalLevel {
		osExit(1)
	}
}

func writeToTarget(line []byte) {
	for {
		t := currentTarget.Load()
		if !t.acquire() {
			// Lost a race with rotation; the new target is already
			// published, retry against it.
			continue
		}
		if _, err := t.f.Write(line); err != nil && t.f != os.Stderr {
			fmt.Fprintf(os.Stderr, "log write failed: %v\n", err)
		}
		t.release()
		return
	}
}
