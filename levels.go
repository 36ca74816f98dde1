package logstream

import (
	"sync/atomic"
)

// Level represents the severity level of a log message.
// Higher values indicate more severe log levels.
type Level int32

// Log level constants defining the supported severity levels.
//
// Levels are ordered from least to most severe:
// - DebugLevel: Detailed information for debugging
// - InfoLevel: General operational information
// - WarningLevel: Warning messages for potentially harmful situations
// - ErrorLevel: Error messages for serious problems
// - FatalLevel: Critical errors causing program termination
const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	FatalLevel
)

// severityLevel is the process-wide minimum level. Streams requested below
// it are handed out disabled. Default is DebugLevel.
var severityLevel atomic.Int32

// String converts a Level to its string representation.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Char returns the single-character marker used in the message header.
// ErrorLevel and FatalLevel both map to 'E'; downstream parsers tell a
// fatal message apart only by the process terminating, not by text.
func (l Level) Char() byte {
	switch l {
	case DebugLevel:
		return 'D'
	case InfoLevel:
		return 'I'
	case WarningLevel:
		return 'W'
	case ErrorLevel, FatalLevel:
		return 'E'
	default:
		return '?'
	}
}

// ParseLevel converts a severity name to its Level.
//
// Recognized names are "debug", "info", "warning" and "error", matched
// case-sensitively. Any other input maps to InfoLevel; no error is
// signaled.
func ParseLevel(name string) Level {
	switch name {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warning":
		return WarningLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// SetSeverityLevel sets the process-wide minimum severity level. Streams
// requested at a lower level are disabled and cost nothing. The change
// affects streams created after the call; in-flight streams keep the
// decision made at their creation.
func SetSeverityLevel(level Level) {
	severityLevel.Store(int32(level))
}

// SetSeverityLevelName sets the minimum severity level by name, using the
// same mapping as ParseLevel.
func SetSeverityLevelName(name string) {
	SetSeverityLevel(ParseLevel(name))
}

// SeverityLevel returns the current process-wide minimum severity level.
func SeverityLevel() Level {
	return Level(severityLevel.Load())
}
