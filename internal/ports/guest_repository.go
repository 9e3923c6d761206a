package ports

import (
	"context"
	"time"

	"pickup-coordination-service/internal/domain"
)

// NewLeg carries the caller-supplied fields of a flight leg before the
// store has assigned identity and order.
type NewLeg struct {
	FlightNumber string
	Airline      string
	Origin       string
	Destination  string
	ETA          time.Time
	Status       domain.FlightStatus
}

// Port: the persistent record of guests and their ordered leg sequences.
//
// Multi-row writes (guest+legs creation, leg replacement, deletion with
// its cascades) are all-or-nothing: a mid-write failure must leave the
// prior state intact. Implementations signal domain.ErrNotFound for
// operations on unknown ids and domain.ErrValidation for empty leg sets.
type GuestRepository interface {
	// CreateGuest stores a guest together with its non-empty leg
	// sequence; each leg receives an order index equal to its position.
	CreateGuest(ctx context.Context, name, phone string, legs []NewLeg) (*domain.Guest, error)

	// GetGuest returns one guest with legs ordered by leg order.
	GetGuest(ctx context.Context, guestID int64) (*domain.Guest, error)

	// ListGuests returns all guests, newest-created first, each with
	// legs ordered by leg order (ties broken by ETA).
	ListGuests(ctx context.Context) ([]*domain.Guest, error)

	// ReplaceGuestLegs atomically swaps the guest's entire leg set.
	ReplaceGuestLegs(ctx context.Context, guestID int64, legs []NewLeg) (*domain.Guest, error)

	// DeleteGuest removes the guest, its legs, and any car-assignment
	// back-reference.
	DeleteGuest(ctx context.Context, guestID int64) error

	// ListOpenLegs returns all legs whose status is not terminal.
	ListOpenLegs(ctx context.Context) ([]*domain.FlightLeg, error)

	// UpdateLegStatus writes a single leg's status independently of any
	// other leg.
	UpdateLegStatus(ctx context.Context, legID int64, status domain.FlightStatus) error
}
