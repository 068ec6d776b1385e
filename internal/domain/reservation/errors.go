package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrNoAvailability     = errors.New("no availability")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// BookingError is a booking call rejected upstream; Status and Message come
// from the API response.
type BookingError struct {
	Status  int
	Message string
}

func (e *BookingError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("booking failed (status=%d)", e.Status)
	}
	return fmt.Sprintf("booking failed: %s (status=%d)", e.Message, e.Status)
}

// NetworkError is a transport-level failure (timeout, connection refused).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error during %s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// Kind names the failure class for CLI output and exit codes.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRestaurantNotFound):
		return "RestaurantNotFound"
	case errors.Is(err, ErrNoAvailability):
		return "NoAvailability"
	case errors.Is(err, ErrInvalidCredentials):
		return "InvalidCredentials"
	}
	var be *BookingError
	if errors.As(err, &be) {
		return "BookingFailed"
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "NetworkError"
	}
	return "Error"
}
