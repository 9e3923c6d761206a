package ports

import (
	"context"
	"time"
)

// FlightRecord is the vendor's report for one flight on one date,
// reduced to the fields the resolver maps from.
type FlightRecord struct {
	VendorStatus          string
	DepartureDelayMinutes int
}

// Contract for the external flight-data vendor. Implementations return
// an error for every failure mode (network, timeout, empty result set);
// interpreting failures as "status unavailable" is the resolver's job,
// not the adapter's.
type FlightDataProvider interface {
	// FlightStatus looks up the vendor's record for the flight
	// identified by airline code and flight number on the given date.
	FlightStatus(ctx context.Context, airline, flightNumber string, date time.Time) (FlightRecord, error)
}
