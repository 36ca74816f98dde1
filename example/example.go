package main

import (
	"errors"

	"github.com/nekipelov/logstream"
)

func main() {
	// Process-wide configuration in one shot.
	logstream.Configure(logstream.Config{
		Severity:          "debug",
		ApplicationPrefix: "example",
		MessagePrefix:     "DEMO",
	})

	// Basic streams at various levels.
	logstream.Debug().Append("starting up").Close()
	logstream.Info().Append("listening on", "0.0.0.0:8080").Close()
	logstream.Warning().Append("disk space is running low:", 93, "percent used").Close()
	logstream.Error().Append("database ping failed:", errors.New("connection refused")).Close()

	// Separator and quoting toggles apply to tokens appended after them.
	logstream.Info().NoSpace().Append("x=", 42, " y=", 43).Close()
	logstream.Info().Quote().Append("quoted", "tokens").NoQuote().Append("plain again").Close()

	// Formatted append.
	logstream.Info().Appendf("request took %.1fms", 12.7).Close()

	// Raise the threshold; debug streams become free no-ops.
	logstream.SetSeverityLevel(logstream.InfoLevel)
	logstream.Debug().Append("this line is never built").Close()

	// Redirect to a file and rotate it.
	logstream.SetLogFileName("example.log")
	logstream.Info().Append("now writing to example.log").Close()
	logstream.RotateFile()
	logstream.Info().Append("still writing to example.log after rotation").Close()

	// A copied handle delays the flush until the last Close.
	s := logstream.Info().Append("shared")
	c := s.Copy()
	s.Append("line")
	s.Close()
	c.Close() // flushes here, exactly once

	logstream.Close()
}
