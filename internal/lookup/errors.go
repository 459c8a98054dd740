package lookup

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Lookup failures come in three categories so callers can tell "no
// matches" (nil error, empty result) apart from "lookup failed".
var (
	ErrTimeout   = errors.New("lookup request timed out")
	ErrTransport = errors.New("lookup transport failure")
	ErrDecode    = errors.New("lookup response malformed")
)

// transportError classifies a request failure as timeout or transport.
func transportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

func decodeError(err error) error {
	return fmt.Errorf("%w: %v", ErrDecode, err)
}

// IsTimeout checks if an error is a lookup timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsTransport checks if an error is a transport failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsDecode checks if an error is a response-decode failure.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}
