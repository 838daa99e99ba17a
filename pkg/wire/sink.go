package wire

import "sync"

// Rejection records one candidate that failed to read a wire value during
// fallback. A rejection is not an error by itself: a later candidate may
// still succeed.
type Rejection struct {
	Field     string
	Candidate Type
	Raw       any
	Err       error
}

// Sink observes rejected fallback attempts. It must not affect control flow.
type Sink interface {
	Reject(r Rejection)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r Rejection)

func (f SinkFunc) Reject(r Rejection) {
	f(r)
}

type discard struct{}

func (discard) Reject(Rejection) {}

// Discard drops every rejection.
var Discard Sink = discard{}

// Recorder keeps every rejection it receives. It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	rejections []Rejection
}

func (r *Recorder) Reject(rej Rejection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rejections = append(r.rejections, rej)
}

// Rejections returns a copy of the recorded rejections in arrival order.
func (r *Recorder) Rejections() []Rejection {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Rejection(nil), r.rejections...)
}
