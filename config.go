package logstream

// Config bundles the process-wide logger settings so an application can
// apply its configuration in one call instead of a series of setters.
//
// Fields:
//   - Severity: minimum level by name ("debug", "info", "warning", "error");
//     unrecognized names fall back to "info"
//   - ApplicationPrefix: written before the timestamp of every line
//   - MessagePrefix: written between the pid and the message body
//   - LogFileName: log file path; empty keeps the current destination
//   - Handler: output callback replacing the file target; leave nil to
//     keep writing to the file target
//   - MaxLogRate: cap in lines per second, 0 means uncapped
//
// Example:
//
//	logstream.Configure(logstream.Config{
//	    Severity:          "warning",
//	    ApplicationPrefix: "gateway",
//	    LogFileName:       "/var/log/gateway.log",
//	})
type Config struct {
	Severity          string
	ApplicationPrefix string
	MessagePrefix     string
	LogFileName       string
	Handler           Handler
	MaxLogRate        int
}

// Configure applies config through the public setters. Severity and the
// prefixes are always applied: an empty severity name maps to Info like
// any other unrecognized name, and an empty prefix clears it. Handler,
// LogFileName and MaxLogRate are applied only when set, so they keep
// their current values under a partial config.
func Configure(config Config) {
	SetSeverityLevelName(config.Severity)
	SetApplicationPrefix(config.ApplicationPrefix)
	SetMessagePrefix(config.MessagePrefix)

	if config.Handler != nil {
		SetOutputHandler(config.Handler)
	}
	if config.LogFileName != "" {
		SetLogFileName(config.LogFileName)
	}
	if config.MaxLogRate > 0 {
		SetMaxLogRate(config.MaxLogRate)
	}
}
