package services

import (
	"context"
	"log"
	"strings"
	"time"

	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
)

// StatusResolver maps vendor flight statuses onto the system vocabulary.
//
// Every failure of the external vendor (network error, timeout, missing
// credential, empty result) is swallowed here and reported as an
// unavailable Resolution. The caller decides fallback policy; this layer
// never guesses a status from a failed call and never persists anything.
//
// An optional cache short-circuits repeated lookups for the same flight
// and date within a pass.
type StatusResolver struct {
	provider ports.FlightDataProvider
	cache    ports.StatusCache
}

// NewStatusResolver builds a resolver. A nil provider is valid and
// models a vendor without configured credentials: every resolution is
// then unavailable.
func NewStatusResolver(provider ports.FlightDataProvider, cache ports.StatusCache) *StatusResolver {
	return &StatusResolver{
		provider: provider,
		cache:    cache,
	}
}

// Resolve looks up the status of one flight on one date.
func (r *StatusResolver) Resolve(ctx context.Context, airline, flightNumber string, date time.Time) Resolution {
	if r.cache != nil {
		status, ok, err := r.cache.Get(ctx, airline, flightNumber, date)
		if err != nil {
			log.Printf("status cache read failed: flight=%s%s err=%v", airline, flightNumber, err)
		} else if ok {
			return Resolution{Status: status, Available: true}
		}
	}

	if r.provider == nil {
		return Resolution{}
	}

	rec, err := r.provider.FlightStatus(ctx, airline, flightNumber, date)
	if err != nil {
		log.Printf("flight status lookup failed: flight=%s%s date=%s err=%v",
			airline, flightNumber, date.Format("2006-01-02"), err)
		return Resolution{}
	}

	status := mapVendorStatus(rec)

	if r.cache != nil {
		if err := r.cache.Put(ctx, airline, flightNumber, date, status); err != nil {
			log.Printf("status cache write failed: flight=%s%s err=%v", airline, flightNumber, err)
		}
	}

	return Resolution{Status: status, Available: true}
}

// mapVendorStatus translates the vendor vocabulary. Unrecognized vendor
// statuses map to OnTime (default optimistic).
func mapVendorStatus(rec ports.FlightRecord) domain.FlightStatus {
	switch strings.ToLower(strings.TrimSpace(rec.VendorStatus)) {
	case "cancelled":
		return domain.StatusCancelled
	case "landed":
		return domain.StatusLanded
	case "active":
		return domain.StatusOnTime
	case "scheduled":
		if rec.DepartureDelayMinutes > 0 {
			return domain.StatusDelayed
		}
		return domain.StatusOnTime
	default:
		return domain.StatusOnTime
	}
}
