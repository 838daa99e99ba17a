package transport

import (
	"fmt"
	"net/http"
)

// APIError is a call the server answered but refused, either through an
// {"ok": false} envelope or a non-200 status without one.
type APIError struct {
	Method      string
	StatusCode  int
	Code        int64
	Description string
	Parameters  map[string]any
}

func (e *APIError) Error() string {
	code := e.Code
	if code == 0 {
		code = int64(e.StatusCode)
	}

	if e.Description == "" {
		return fmt.Sprintf("%s: api error %d", e.Method, code)
	}

	return fmt.Sprintf("%s: api error %d: %s", e.Method, code, e.Description)
}

// IsThrottled reports whether the server asked the caller to slow down.
func (e *APIError) IsThrottled() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.Code == http.StatusTooManyRequests
}
