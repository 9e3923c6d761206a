package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/platform/obs"
	"pickup-coordination-service/internal/ports"
)

// Postgres-backed implementation of the GuestRepository port.
//
// Guest+leg creation, leg replacement and deletion each run in a single
// transaction so a concurrent reader never observes a guest with zero
// legs or a half-swapped itinerary.
type PostgresGuestRepository struct{ DB *sql.DB }

func NewPostgresGuestRepository(db *sql.DB) *PostgresGuestRepository {
	return &PostgresGuestRepository{DB: db}
}

func validateLegs(legs []ports.NewLeg) error {
	if len(legs) == 0 {
		return fmt.Errorf("guest must have at least one leg: %w", domain.ErrValidation)
	}
	for i, l := range legs {
		if strings.TrimSpace(l.FlightNumber) == "" || strings.TrimSpace(l.Airline) == "" {
			return fmt.Errorf("leg %d is missing flight number or airline: %w", i, domain.ErrValidation)
		}
		if strings.TrimSpace(l.Origin) == "" || strings.TrimSpace(l.Destination) == "" {
			return fmt.Errorf("leg %d is missing origin or destination: %w", i, domain.ErrValidation)
		}
		if l.ETA.IsZero() {
			return fmt.Errorf("leg %d is missing eta: %w", i, domain.ErrValidation)
		}
	}
	return nil
}

// insertLegs writes the leg sequence inside an open transaction. Each
// leg's order index is its position in the slice.
func insertLegs(ctx context.Context, tx *sql.Tx, guestID int64, legs []ports.NewLeg) ([]*domain.FlightLeg, error) {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO flight_legs (
		guest_id,
		leg_order,
		flight_number,
		airline,
		origin,
		destination,
		eta,
		status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING leg_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare leg insert: %w", err)
	}
	defer stmt.Close()

	out := make([]*domain.FlightLeg, 0, len(legs))
	for i, l := range legs {
		status := l.Status
		if status == "" {
			status = domain.StatusOnTime
		}

		var legID int64
		err := stmt.QueryRowContext(
			ctx,
			guestID, i, l.FlightNumber, l.Airline, l.Origin, l.Destination, l.ETA, string(status),
		).Scan(&legID)
		if err != nil {
			return nil, fmt.Errorf("insert leg %d: %w", i, err)
		}

		out = append(out, &domain.FlightLeg{
			LegID:        legID,
			GuestID:      guestID,
			LegOrder:     i,
			FlightNumber: l.FlightNumber,
			Airline:      l.Airline,
			Origin:       l.Origin,
			Destination:  l.Destination,
			ETA:          l.ETA,
			Status:       status,
		})
	}

	return out, nil
}

// CreateGuest stores a guest and its leg sequence as one atomic unit.
func (r *PostgresGuestRepository) CreateGuest(
	ctx context.Context,
	name string,
	phone string,
	legs []ports.NewLeg,
) (_ *domain.Guest, err error) {
	defer obs.Time(ctx, "guests.Create")(&err)

	if r.DB == nil {
		return nil, errors.New("guest repository: DB is nil")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("guest name must be non-empty: %w", domain.ErrValidation)
	}
	if err := validateLegs(legs); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create guest: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	guest := &domain.Guest{Name: name, Phone: phone}
	err = tx.QueryRowContext(ctx, `
	INSERT INTO guests (name, phone)
	VALUES ($1, $2)
	RETURNING guest_id, created_at;
	`, name, phone).Scan(&guest.GuestID, &guest.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create guest: insert guest row: %w", err)
	}

	guest.Legs, err = insertLegs(ctx, tx, guest.GuestID, legs)
	if err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create guest: commit tx: %w", err)
	}

	return guest, nil
}

// GetGuest returns one guest with its ordered legs and car assignment.
func (r *PostgresGuestRepository) GetGuest(ctx context.Context, guestID int64) (*domain.Guest, error) {
	if r.DB == nil {
		return nil, errors.New("guest repository: DB is nil")
	}

	guest := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, `
	SELECT g.guest_id, g.name, g.phone, g.created_at, cp.car_id
	FROM guests g
	LEFT JOIN car_passengers cp ON cp.guest_id = g.guest_id
	WHERE g.guest_id = $1;
	`, guestID).Scan(&guest.GuestID, &guest.Name, &guest.Phone, &guest.CreatedAt, &guest.CarID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("guest %d: %w", guestID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get guest: query guest row: %w", err)
	}

	legs, err := r.legsForGuests(ctx, []int64{guestID})
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	guest.Legs = legs[guestID]

	return guest, nil
}

// ListGuests returns all guests, newest-created first, with legs
// ordered by leg order (ties broken by ETA).
func (r *PostgresGuestRepository) ListGuests(ctx context.Context) (_ []*domain.Guest, err error) {
	defer obs.Time(ctx, "guests.List")(&err)

	if r.DB == nil {
		return nil, errors.New("guest repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT g.guest_id, g.name, g.phone, g.created_at, cp.car_id
	FROM guests g
	LEFT JOIN car_passengers cp ON cp.guest_id = g.guest_id
	ORDER BY g.created_at DESC, g.guest_id DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("list guests: query guests table: %w", err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0, 64)
	ids := make([]int64, 0, 64)
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.GuestID, &g.Name, &g.Phone, &g.CreatedAt, &g.CarID); err != nil {
			return nil, fmt.Errorf("list guests: scan row: %w", err)
		}
		guests = append(guests, g)
		ids = append(ids, g.GuestID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list guests: row iteration: %w", err)
	}

	legs, err := r.legsForGuests(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	for _, g := range guests {
		g.Legs = legs[g.GuestID]
	}

	return guests, nil
}

// legsForGuests loads ordered legs for many guests in one query.
func (r *PostgresGuestRepository) legsForGuests(ctx context.Context, guestIDs []int64) (map[int64][]*domain.FlightLeg, error) {
	out := make(map[int64][]*domain.FlightLeg, len(guestIDs))
	if len(guestIDs) == 0 {
		return out, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT leg_id, guest_id, leg_order, flight_number, airline, origin, destination, eta, status
	FROM flight_legs
	WHERE guest_id = ANY($1::bigint[])
	ORDER BY guest_id, leg_order, eta;
	`, guestIDs)
	if err != nil {
		return nil, fmt.Errorf("query flight_legs table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l := &domain.FlightLeg{}
		var status string
		err := rows.Scan(
			&l.LegID, &l.GuestID, &l.LegOrder,
			&l.FlightNumber, &l.Airline, &l.Origin, &l.Destination,
			&l.ETA, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan leg row: %w", err)
		}
		l.Status = domain.FlightStatus(status)
		out[l.GuestID] = append(out[l.GuestID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leg row iteration: %w", err)
	}

	return out, nil
}

// ReplaceGuestLegs swaps the guest's entire leg set in one transaction.
// The guest row is locked for the duration so no reader of committed
// state ever sees the window between delete and reinsert.
func (r *PostgresGuestRepository) ReplaceGuestLegs(
	ctx context.Context,
	guestID int64,
	legs []ports.NewLeg,
) (_ *domain.Guest, err error) {
	defer obs.Time(ctx, "guests.ReplaceLegs")(&err)

	if r.DB == nil {
		return nil, errors.New("guest repository: DB is nil")
	}
	if err := validateLegs(legs); err != nil {
		return nil, fmt.Errorf("replace guest legs: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("replace guest legs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	guest := &domain.Guest{}
	err = tx.QueryRowContext(ctx, `
	SELECT guest_id, name, phone, created_at
	FROM guests
	WHERE guest_id = $1
	FOR UPDATE;
	`, guestID).Scan(&guest.GuestID, &guest.Name, &guest.Phone, &guest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("guest %d: %w", guestID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("replace guest legs: lock guest row: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM flight_legs WHERE guest_id = $1;`, guestID); err != nil {
		return nil, fmt.Errorf("replace guest legs: delete old legs: %w", err)
	}

	guest.Legs, err = insertLegs(ctx, tx, guestID, legs)
	if err != nil {
		return nil, fmt.Errorf("replace guest legs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("replace guest legs: commit tx: %w", err)
	}

	err = r.DB.QueryRowContext(ctx, `
	SELECT car_id FROM car_passengers WHERE guest_id = $1;
	`, guestID).Scan(&guest.CarID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("replace guest legs: load car assignment: %w", err)
	}

	return guest, nil
}

// DeleteGuest removes the guest, its legs, and its seat in any car.
func (r *PostgresGuestRepository) DeleteGuest(ctx context.Context, guestID int64) (err error) {
	defer obs.Time(ctx, "guests.Delete")(&err)

	if r.DB == nil {
		return errors.New("guest repository: DB is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete guest: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM car_passengers WHERE guest_id = $1;`, guestID); err != nil {
		return fmt.Errorf("delete guest: clear car seat: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM flight_legs WHERE guest_id = $1;`, guestID); err != nil {
		return fmt.Errorf("delete guest: delete legs: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM guests WHERE guest_id = $1;`, guestID)
	if err != nil {
		return fmt.Errorf("delete guest: delete guest row: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete guest: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("guest %d: %w", guestID, domain.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete guest: commit tx: %w", err)
	}

	return nil
}

// ListOpenLegs returns every leg whose status is not terminal.
func (r *PostgresGuestRepository) ListOpenLegs(ctx context.Context) ([]*domain.FlightLeg, error) {
	if r.DB == nil {
		return nil, errors.New("guest repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT leg_id, guest_id, leg_order, flight_number, airline, origin, destination, eta, status
	FROM flight_legs
	WHERE status NOT IN ($1, $2)
	ORDER BY leg_id;
	`, string(domain.StatusLanded), string(domain.StatusCancelled))
	if err != nil {
		return nil, fmt.Errorf("list open legs: query flight_legs table: %w", err)
	}
	defer rows.Close()

	legs := make([]*domain.FlightLeg, 0, 64)
	for rows.Next() {
		l := &domain.FlightLeg{}
		var status string
		err := rows.Scan(
			&l.LegID, &l.GuestID, &l.LegOrder,
			&l.FlightNumber, &l.Airline, &l.Origin, &l.Destination,
			&l.ETA, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("list open legs: scan row: %w", err)
		}
		l.Status = domain.FlightStatus(status)
		legs = append(legs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list open legs: row iteration: %w", err)
	}

	return legs, nil
}

// UpdateLegStatus writes one leg's status. Each call is its own atomic
// write so reconciliation failures on other legs have no effect here.
func (r *PostgresGuestRepository) UpdateLegStatus(ctx context.Context, legID int64, status domain.FlightStatus) error {
	if r.DB == nil {
		return errors.New("guest repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `
	UPDATE flight_legs SET status = $1 WHERE leg_id = $2;
	`, string(status), legID)
	if err != nil {
		return fmt.Errorf("update leg status: exec: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update leg status: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("leg %d: %w", legID, domain.ErrNotFound)
	}

	return nil
}
