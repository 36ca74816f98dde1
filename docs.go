// Package logstream provides a lightweight, process-wide, stream-style
// logging facility for embedding in larger applications.
//
// Overview:
// logstream is built around chained message streams: a level constructor
// hands out a pooled buffer pre-seeded with a timestamped header, tokens
// are appended through chained calls, and closing the last handle flushes
// the finished line exactly once to the configured destination. The hot
// path does no allocation for filtered-out messages and recycles buffers
// for the rest, so logging stays cheap enough for hot paths.
//
// Key Features:
// - Five severity levels (Debug, Info, Warning, Error, Fatal)
// - Chained append API with space/quote toggles per token
// - Pooled message buffers (sync.Pool + bytebufferpool)
// - Fixed-layout timestamped header with application and message prefixes
// - Pluggable output handler or file target with atomic rotation
// - Optional rate limiting of message creation
// - Fatal messages terminate the process after dispatch
//
// Getting Started:
//
//	package main
//
//	import "github.com/nekipelov/logstream"
//
//	func main() {
//	    logstream.SetApplicationPrefix("myapp")
//	    logstream.SetLogFileName("/var/log/myapp.log")
//
//	    logstream.Info().Append("string", "to", "log", 10).Close()
//	    logstream.Info().NoSpace().Append("string", "to", "log", 10).Close()
//	    logstream.Info().Quote().Append("string", "to", "log", 10).Close()
//	}
//
// Output:
//
//	myapp 03.08.2017 12:44:15.737 I [26629] : string to log 10
//	myapp 03.08.2017 12:44:15.737 I [26629] : stringtolog10
//	myapp 03.08.2017 12:44:15.737 I [26629] : "string" "to" "log" "10"
//
// Severity Filtering:
//
// Messages below the process-wide minimum level cost nothing: the stream
// carries no buffer and every chained call is a no-op.
//
//	logstream.SetSeverityLevel(logstream.WarningLevel)
//	logstream.Debug().Append("this won't appear").Close()
//	logstream.Error().Append("this will appear").Close()
//
// The filter decision is made when the stream is created; changing the
// level afterwards never affects a message already in flight.
//
// Custom Types:
//
// Any type implementing the Texter interface controls its own rendering:
//
//	func (id RequestID) LogText() string { return "req-" + string(id) }
//
//	logstream.Debug().Append(id).Close()
//
// error and fmt.Stringer implementations, booleans, integers and floats
// are handled natively; everything else goes through fmt.
//
// Output Destinations:
//
// By default lines go to standard error. SetLogFileName switches to a
// file; RotateFile reopens it after external renames (logrotate). A
// registered handler replaces file writing entirely:
//
//	logstream.SetOutputHandler(func(level logstream.Level, msg string) {
//	    forwardToCollector(level, msg)
//	})
//
// Fatal Messages:
//
// Closing a fatal stream terminates the process after the line has been
// delivered. Error and Fatal share the header marker 'E'; a fatal message
// is distinguishable only by the process exiting.
package logstream
