package transport

import (
	"github.com/rs/zerolog"
)

// leveledZerolog adapts zerolog to retryablehttp.LeveledLogger.
type leveledZerolog struct {
	inner zerolog.Logger
}

// Error is logged as a warning because the request is retried.
func (l leveledZerolog) Error(msg string, keysAndValues ...any) {
	l.inner.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledZerolog) Warn(msg string, keysAndValues ...any) {
	l.inner.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledZerolog) Info(msg string, keysAndValues ...any) {
	l.inner.Info().Fields(keysAndValues).Msg(msg)
}

// Debug is where retries are reported, so it goes out at info.
func (l leveledZerolog) Debug(msg string, keysAndValues ...any) {
	l.inner.Info().Fields(keysAndValues).Msg(msg)
}
