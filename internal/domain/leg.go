package domain

import "time"

// FlightLeg is one segment of a guest's itinerary. A leg belongs to
// exactly one guest and is deleted with it. Legs are totally ordered by
// the explicit LegOrder index, not by time, since itineraries may have
// layovers that arrive out of schedule order.
type FlightLeg struct {
	LegID        int64
	GuestID      int64
	LegOrder     int
	FlightNumber string
	Airline      string
	Origin       string
	Destination  string
	ETA          time.Time
	Status       FlightStatus
}

// FlightKey is the airline code concatenated with the flight number,
// e.g. "XY100". It identifies the flight for grouping and for vendor
// lookups.
func (l *FlightLeg) FlightKey() string {
	return l.Airline + l.FlightNumber
}
