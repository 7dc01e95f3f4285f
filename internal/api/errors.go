package api

import "fmt"

// HTTPError reports a non-2xx response from the backend. The body is kept
// verbatim so callers can surface server-side validation messages.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: unexpected status %d: %s", e.Status, e.Body)
}

// TransportError reports a network or decode failure before a usable
// response was obtained.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
