// Package wirelog reports rejected fallback attempts to a zerolog logger.
package wirelog

import (
	"github.com/rs/zerolog"

	"binding-generator/pkg/wire"
)

// Sink logs every rejection at debug level. Rejections are expected during
// normal fallback, so they never go above debug.
type Sink struct {
	logger zerolog.Logger
	// dump adds a rendering of the raw wire value to each event.
	dump bool
}

// Option configures a Sink.
type Option func(*Sink)

// WithRawDump includes the rejected wire value in each log event.
func WithRawDump() Option {
	return func(s *Sink) {
		s.dump = true
	}
}

// New returns a sink writing to logger.
func New(logger zerolog.Logger, opts ...Option) *Sink {
	s := &Sink{logger: logger.With().Str("component", "wire").Logger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ wire.Sink = (*Sink)(nil)

// Reject implements wire.Sink.
func (s *Sink) Reject(r wire.Rejection) {
	ev := s.logger.Debug()
	if !ev.Enabled() {
		return
	}

	ev = ev.
		Str("field", r.Field).
		Str("candidate", r.Candidate.String()).
		Str("shape", wire.Shape(r.Raw)).
		Err(r.Err)

	if s.dump {
		ev = ev.Str("raw", wire.Describe(r.Raw))
	}

	ev.Msg("candidate rejected")
}
