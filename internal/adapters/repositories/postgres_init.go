package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the guest/leg/car tables if they do not exist.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGuestsQuery := `
	CREATE TABLE IF NOT EXISTS guests (
		guest_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createLegsQuery := `
	CREATE TABLE IF NOT EXISTS flight_legs (
		leg_id BIGSERIAL PRIMARY KEY,
		guest_id BIGINT NOT NULL REFERENCES guests(guest_id) ON DELETE CASCADE,
		leg_order INTEGER NOT NULL,
		flight_number TEXT NOT NULL,
		airline TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		eta TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'on_time'
	);
	`

	createCarsQuery := `
	CREATE TABLE IF NOT EXISTS cars (
		car_id INTEGER PRIMARY KEY,
		capacity INTEGER NOT NULL,
		flight_number TEXT NOT NULL DEFAULT '',
		airline TEXT NOT NULL DEFAULT '',
		destination TEXT NOT NULL DEFAULT '',
		eta TIMESTAMPTZ,
		driver_name TEXT NOT NULL DEFAULT '',
		driver_phone TEXT NOT NULL DEFAULT ''
	);
	`

	createPassengersQuery := `
	CREATE TABLE IF NOT EXISTS car_passengers (
		car_id INTEGER NOT NULL REFERENCES cars(car_id) ON DELETE CASCADE,
		guest_id BIGINT NOT NULL REFERENCES guests(guest_id) ON DELETE CASCADE,
		seat_order INTEGER NOT NULL,
		PRIMARY KEY (car_id, guest_id)
	);
	`

	createLegIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_flight_legs_guest_order
	ON flight_legs(guest_id, leg_order);
	`

	createLegStatusIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_flight_legs_status
	ON flight_legs(status);
	`

	statements := []string{
		createGuestsQuery,
		createLegsQuery,
		createCarsQuery,
		createPassengersQuery,
		createLegIndexQuery,
		createLegStatusIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
