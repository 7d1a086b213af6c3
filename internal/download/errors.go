package download

import (
	"errors"
	"fmt"
)

// TransportError reports a network-level failure while contacting a URL
// (connection refused, DNS failure, client timeout).
type TransportError struct {
	URL string
	Err error
}

// Error returns the string representation of the transport failure.
func (e *TransportError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying client error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// CopyError reports a failure while buffering a successful response body.
type CopyError struct {
	URL string
	Err error
}

// Error returns the string representation of the buffering failure.
func (e *CopyError) Error() string {
	return fmt.Sprintf("buffer response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying copy error.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsCopyError reports whether err is (or wraps) a CopyError.
func IsCopyError(err error) bool {
	var ce *CopyError
	return errors.As(err, &ce)
}
