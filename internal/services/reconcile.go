package services

import (
	"time"

	"pickup-coordination-service/internal/domain"
)

// Resolution is the outcome of one vendor lookup. Available=false means
// the vendor could not be consulted (network failure, timeout, missing
// credential, empty result) and carries no status.
type Resolution struct {
	Status    domain.FlightStatus
	Available bool
}

// Reconcile decides the recorded status of a leg after a resolution
// attempt. The function is pure and idempotent.
//
// A concrete resolution replaces the current status unconditionally:
// the vendor is authoritative when reachable. Terminal statuses are
// sticky regardless of input; callers should not request resolution for
// terminal legs in the first place.
//
// When the vendor is unavailable the current status is kept, with one
// deliberate guess: an on-time leg whose scheduled ETA has passed is
// assumed to have landed. A delayed-but-unconfirmed flight can be
// mis-marked Landed by this rule; the next reachable lookup would not
// correct it, which is the accepted cost of not showing stale "on time"
// rows indefinitely.
func Reconcile(current domain.FlightStatus, res Resolution, eta time.Time, now time.Time) domain.FlightStatus {
	if current.Terminal() {
		return current
	}

	if res.Available {
		return res.Status
	}

	if current == domain.StatusOnTime && eta.Before(now) {
		return domain.StatusLanded
	}

	return current
}
