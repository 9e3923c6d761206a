package domain

import "fmt"

// FlightStatus is the system's small status vocabulary for a flight leg.
// Vendor-specific statuses are mapped onto these four values at the
// resolver boundary; nothing outside that boundary sees vendor strings.
type FlightStatus string

const (
	StatusOnTime    FlightStatus = "on_time"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"
	StatusLanded    FlightStatus = "landed"
)

// Terminal reports whether the status is final. Terminal legs are
// excluded from reconciliation and never re-queried.
func (s FlightStatus) Terminal() bool {
	return s == StatusLanded || s == StatusCancelled
}

// ParseFlightStatus validates an inbound status string.
func ParseFlightStatus(v string) (FlightStatus, error) {
	switch FlightStatus(v) {
	case StatusOnTime, StatusDelayed, StatusCancelled, StatusLanded:
		return FlightStatus(v), nil
	}
	return "", fmt.Errorf("parse flight status: unknown status %q: %w", v, ErrValidation)
}
