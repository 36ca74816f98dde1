package logstream

import "sync"

// Prefixes are written rarely (configuration time) and read on every header
// format, so a single mutex with copy-in/copy-out critical sections is
// enough. The lock is never held across formatting or I/O.
var (
	prefixMu          sync.Mutex
	applicationPrefix string
	messagePrefix     string
)

// SetApplicationPrefix sets the prefix written before the timestamp of
// every message. A trailing space is appended automatically when the
// prefix is non-empty, so callers never supply the separator themselves.
// An empty string clears the prefix entirely.
func SetApplicationPrefix(prefix string) {
	if prefix != "" {
		prefix += " "
	}

	prefixMu.Lock()
	applicationPrefix = prefix
	prefixMu.Unlock()
}

// SetMessagePrefix sets the prefix written between the pid and the message
// body. Useful for tagging every line of a deployment for quick grep.
// Stored verbatim; an empty string clears it.
func SetMessagePrefix(prefix string) {
	prefixMu.Lock()
	messagePrefix = prefix
	prefixMu.Unlock()
}

// prefixSnapshot copies both prefixes out under the lock.
func prefixSnapshot() (app, msg string) {
	prefixMu.Lock()
	app = applicationPrefix
	msg = messagePrefix
	prefixMu.Unlock()
	return app, msg
}
