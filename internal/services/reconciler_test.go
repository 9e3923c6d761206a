package services

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"pickup-coordination-service/internal/adapters/flightdata"
	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
)

// fakeLegStore implements only the repository methods a pass touches.
type fakeLegStore struct {
	ports.GuestRepository

	mu   sync.Mutex
	legs map[int64]*domain.FlightLeg
}

func newFakeLegStore(legs ...*domain.FlightLeg) *fakeLegStore {
	s := &fakeLegStore{legs: map[int64]*domain.FlightLeg{}}
	for _, l := range legs {
		s.legs[l.LegID] = l
	}
	return s
}

func (s *fakeLegStore) ListOpenLegs(ctx context.Context) ([]*domain.FlightLeg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*domain.FlightLeg{}
	for _, l := range s.legs {
		if !l.Status.Terminal() {
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeLegStore) UpdateLegStatus(ctx context.Context, legID int64, status domain.FlightStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.legs[legID].Status = status
	return nil
}

func (s *fakeLegStore) status(legID int64) domain.FlightStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.legs[legID].Status
}

func TestReconcilerPass(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	store := newFakeLegStore(
		// Vendor reports this one cancelled.
		&domain.FlightLeg{LegID: 1, Airline: "XY", FlightNumber: "100", ETA: future, Status: domain.StatusOnTime},
		// Vendor unreachable, ETA passed: falls back to landed.
		&domain.FlightLeg{LegID: 2, Airline: "ZZ", FlightNumber: "42", ETA: past, Status: domain.StatusOnTime},
		// Vendor unreachable, delayed: kept as-is.
		&domain.FlightLeg{LegID: 3, Airline: "QQ", FlightNumber: "7", ETA: past, Status: domain.StatusDelayed},
		// Terminal: never part of the pass.
		&domain.FlightLeg{LegID: 4, Airline: "XY", FlightNumber: "100", ETA: past, Status: domain.StatusLanded},
	)

	provider := flightdata.NewMockFlightDataProvider([]flightdata.MockFlight{
		{Airline: "XY", FlightNumber: "100", Date: future.Format("2006-01-02"), VendorStatus: "cancelled"},
	})

	rc := NewReconciler(store, NewStatusResolver(provider, nil))
	rc.CallTimeout = time.Second

	updated, err := rc.RunPass(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 2 {
		t.Fatalf("updated = %d, want 2", updated)
	}

	if got := store.status(1); got != domain.StatusCancelled {
		t.Fatalf("leg 1 status = %s, want cancelled", got)
	}
	if got := store.status(2); got != domain.StatusLanded {
		t.Fatalf("leg 2 status = %s, want landed", got)
	}
	if got := store.status(3); got != domain.StatusDelayed {
		t.Fatalf("leg 3 status = %s, want delayed", got)
	}
	if got := store.status(4); got != domain.StatusLanded {
		t.Fatalf("leg 4 status = %s, want landed", got)
	}
}

func TestReconcilerPassConcurrentProviderLookups(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(3 * time.Hour)
	date := future.Format("2006-01-02")

	var legs []*domain.FlightLeg
	var flights []flightdata.MockFlight
	for i := 0; i < 64; i++ {
		num := strconv.Itoa(100 + i)
		legs = append(legs, &domain.FlightLeg{
			LegID: int64(i + 1), Airline: "XY", FlightNumber: num,
			ETA: future, Status: domain.StatusOnTime,
		})
		flights = append(flights, flightdata.MockFlight{
			Airline: "XY", FlightNumber: num, Date: date, VendorStatus: "cancelled",
		})
	}

	store := newFakeLegStore(legs...)
	provider := flightdata.NewMockFlightDataProvider(flights)

	rc := NewReconciler(store, NewStatusResolver(provider, nil))
	rc.CallTimeout = time.Second
	rc.Workers = 8

	updated, err := rc.RunPass(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != len(legs) {
		t.Fatalf("updated = %d, want %d", updated, len(legs))
	}
	if provider.Calls() != len(legs) {
		t.Fatalf("provider calls = %d, want %d", provider.Calls(), len(legs))
	}
}

func TestReconcilerPassIsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := newFakeLegStore(
		&domain.FlightLeg{LegID: 1, Airline: "XY", FlightNumber: "100", ETA: now.Add(-time.Hour), Status: domain.StatusOnTime},
	)

	rc := NewReconciler(store, NewStatusResolver(nil, nil))
	rc.CallTimeout = time.Second

	updated, err := rc.RunPass(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 1 {
		t.Fatalf("first pass updated = %d, want 1", updated)
	}

	updated, err = rc.RunPass(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 0 {
		t.Fatalf("second pass updated = %d, want 0", updated)
	}
}
