package wire

import (
	"context"
	"errors"
)

// Executor performs one remote call of the API. Errors it returns are passed
// to the caller of the generated callable unchanged.
type Executor interface {
	Execute(ctx context.Context, method string, args map[string]any) (any, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, method string, args map[string]any) (any, error)

func (f ExecutorFunc) Execute(ctx context.Context, method string, args map[string]any) (any, error) {
	return f(ctx, method, args)
}

// Client is what generated callables run against: the transport plus the
// sink that observes rejected fallback attempts while reading results.
type Client struct {
	Executor Executor
	Sink     Sink
}

// NewClient returns a client over e that discards rejections.
func NewClient(e Executor) *Client {
	return &Client{Executor: e, Sink: Discard}
}

// Execute calls the transport.
func (c *Client) Execute(ctx context.Context, method string, args map[string]any) (any, error) {
	return c.Executor.Execute(ctx, method, args)
}

// Result reads the raw response of method through the return field f. An
// exhausted fallback is reported as *ResultParseFailure.
func (c *Client) Result(method string, raw any, f *Field) (Resolved, error) {
	r, err := Deserialize(raw, f, c.sink())
	if err == nil {
		return r, nil
	}

	var exhausted *ParseExhausted
	if errors.As(err, &exhausted) {
		return None, &ResultParseFailure{Method: method, Cause: exhausted}
	}

	return None, err
}

func (c *Client) sink() Sink {
	if c.Sink == nil {
		return Discard
	}

	return c.Sink
}
