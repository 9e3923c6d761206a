package domain

import "time"

// Guest is an incoming traveler with an ordered, non-empty flight
// itinerary and at most one active car assignment.
//
// The final destination and ETA are derived from the last leg at read
// time rather than stored redundantly, so no write path can leave them
// stale.
type Guest struct {
	GuestID   int64
	Name      string
	Phone     string
	CreatedAt time.Time
	Legs      []*FlightLeg
	CarID     *int
}

// FinalLeg returns the leg with the highest order index, or nil for a
// guest whose legs have not been loaded.
func (g *Guest) FinalLeg() *FlightLeg {
	var last *FlightLeg
	for _, l := range g.Legs {
		if last == nil || l.LegOrder > last.LegOrder {
			last = l
		}
	}
	return last
}

// FinalDestination returns the destination of the guest's last leg.
func (g *Guest) FinalDestination() string {
	if last := g.FinalLeg(); last != nil {
		return last.Destination
	}
	return ""
}

// FinalETA returns the scheduled arrival of the guest's last leg.
func (g *Guest) FinalETA() *time.Time {
	if last := g.FinalLeg(); last != nil {
		eta := last.ETA
		return &eta
	}
	return nil
}
