package ports

import (
	"context"
	"time"

	"pickup-coordination-service/internal/domain"
)

// Optional short-lived cache of resolved flight statuses, keyed by
// (airline+flight, date). A cache miss is not an error.
type StatusCache interface {
	// Get returns the cached status and whether one was present.
	Get(ctx context.Context, airline, flightNumber string, date time.Time) (domain.FlightStatus, bool, error)

	// Put stores a resolved status under the flight/date key.
	Put(ctx context.Context, airline, flightNumber string, date time.Time, status domain.FlightStatus) error
}
