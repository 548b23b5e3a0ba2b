package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Sentinel errors for transport-level failures. Callers match with
// errors.Is; the wrapped detail is for logs only.
var (
	// ErrOffline means the transport could not reach the server at all.
	ErrOffline = errors.New("no internet connection")

	// ErrTimeout means the request exceeded the client timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrUnknown is any other transport failure.
	ErrUnknown = errors.New("network error")

	// ErrUnsuccessful means the server answered 2xx but the envelope
	// reported success=false.
	ErrUnsuccessful = errors.New("server reported an unsuccessful response")
)

// ServerError is a non-2xx HTTP response.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}

// DecodeError is a response body that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// classify normalizes a transport error into one of the sentinel kinds.
// The original error text is preserved as wrapped detail.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETDOWN) {
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}
	return fmt.Errorf("%w: %v", ErrUnknown, err)
}
