package logstream

import (
	"testing"
)

func discardHandler(Level, string) {}

func BenchmarkStream(b *testing.B) {
	SetOutputHandler(discardHandler)
	defer SetOutputHandler(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info().Append("benchmark log message").Close()
	}
}

func BenchmarkStreamMixedTokens(b *testing.B) {
	SetOutputHandler(discardHandler)
	defer SetOutputHandler(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info().Append("request", i, "took", 12.5, "ms").Close()
	}
}

func BenchmarkStreamQuoted(b *testing.B) {
	SetOutputHandler(discardHandler)
	defer SetOutputHandler(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info().Quote().Append("quoted", "tokens").Close()
	}
}

func BenchmarkDisabledStream(b *testing.B) {
	SetSeverityLevel(ErrorLevel)
	defer SetSeverityLevel(DebugLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Debug().Append("filtered out before any allocation").Close()
	}
}

func BenchmarkStreamParallel(b *testing.B) {
	SetOutputHandler(discardHandler)
	defer SetOutputHandler(nil)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Info().Append("parallel benchmark message").Close()
		}
	})
}
