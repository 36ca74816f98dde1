package logstream

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureAppliesFields(t *testing.T) {
	sink := &captureSink{}
	sink.install(t)

	Configure(Config{
		Severity:          "warning",
		ApplicationPrefix: "gateway",
		MessagePrefix:     "MP",
		Handler:           sink.handler,
		MaxLogRate:        100,
	})

	assert.Equal(t, WarningLevel, SeverityLevel())
	assert.NotNil(t, rateLimiter.Load())

	Info().Append("filtered out").Close()
	Warning().Append("kept").Close()

	require.Len(t, sink.lines, 1)
	assert.Regexp(t, regexp.MustCompile(`^gateway \d{2}\.\d{2}\.\d{4} .* \[\d+\] MP:  kept$`), sink.lines[0])
}

func TestConfigurePartial(t *testing.T) {
	sink := &captureSink{}
	sink.install(t)

	before := currentTarget.Load()
	Configure(Config{})

	// Unset fields keep their current values; the empty severity name maps
	// to Info like any other unrecognized name.
	assert.Equal(t, InfoLevel, SeverityLevel())
	assert.Nil(t, rateLimiter.Load())
	assert.Same(t, before, currentTarget.Load())

	Debug().Append("below threshold").Close()
	Info().Append("at threshold").Close()
	require.Len(t, sink.lines, 1)
}
