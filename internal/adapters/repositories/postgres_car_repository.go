package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/platform/obs"
	"pickup-coordination-service/internal/ports"
)

// Postgres-backed implementation of the CarRepository port.
//
// An assignment run replaces every car and every passenger row in one
// transaction; the join table is the single source of the guest-to-car
// relation, so there is no back-reference to keep in sync.
type PostgresCarRepository struct{ DB *sql.DB }

func NewPostgresCarRepository(db *sql.DB) *PostgresCarRepository {
	return &PostgresCarRepository{DB: db}
}

// ListCars returns all cars in car-number order with passengers seated
// in boarding order.
func (r *PostgresCarRepository) ListCars(ctx context.Context) (_ []*domain.Car, err error) {
	defer obs.Time(ctx, "cars.List")(&err)

	if r.DB == nil {
		return nil, errors.New("car repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT car_id, capacity, flight_number, airline, destination, eta, driver_name, driver_phone
	FROM cars
	ORDER BY car_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list cars: query cars table: %w", err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0, 16)
	byID := make(map[int]*domain.Car, 16)
	for rows.Next() {
		c := &domain.Car{}
		err := rows.Scan(
			&c.CarID, &c.Capacity,
			&c.FlightNumber, &c.Airline, &c.Destination, &c.ETA,
			&c.DriverName, &c.DriverPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("list cars: scan row: %w", err)
		}
		cars = append(cars, c)
		byID[c.CarID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cars: row iteration: %w", err)
	}

	if len(cars) == 0 {
		return cars, nil
	}

	prows, err := r.DB.QueryContext(ctx, `
	SELECT cp.car_id, g.guest_id, g.name, g.phone, g.created_at
	FROM car_passengers cp
	JOIN guests g ON g.guest_id = cp.guest_id
	ORDER BY cp.car_id, cp.seat_order;
	`)
	if err != nil {
		return nil, fmt.Errorf("list cars: query car_passengers table: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var carID int
		g := &domain.Guest{}
		if err := prows.Scan(&carID, &g.GuestID, &g.Name, &g.Phone, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("list cars: scan passenger row: %w", err)
		}
		if car, ok := byID[carID]; ok {
			id := carID
			g.CarID = &id
			car.Passengers = append(car.Passengers, g)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("list cars: passenger row iteration: %w", err)
	}

	return cars, nil
}

// ReplaceAll clears every car and passenger row and stores the given
// assignment run as one atomic unit.
func (r *PostgresCarRepository) ReplaceAll(ctx context.Context, cars []*domain.Car) (err error) {
	defer obs.Time(ctx, "cars.ReplaceAll")(&err)

	if r.DB == nil {
		return errors.New("car repository: DB is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace cars: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM car_passengers;`); err != nil {
		return fmt.Errorf("replace cars: clear car_passengers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cars;`); err != nil {
		return fmt.Errorf("replace cars: clear cars: %w", err)
	}

	carStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO cars (car_id, capacity, flight_number, airline, destination, eta, driver_name, driver_phone)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("replace cars: prepare car insert: %w", err)
	}
	defer carStmt.Close()

	seatStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO car_passengers (car_id, guest_id, seat_order)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("replace cars: prepare passenger insert: %w", err)
	}
	defer seatStmt.Close()

	for _, c := range cars {
		_, err := carStmt.ExecContext(
			ctx,
			c.CarID, c.Capacity,
			c.FlightNumber, c.Airline, c.Destination, c.ETA,
			c.DriverName, c.DriverPhone,
		)
		if err != nil {
			return fmt.Errorf("replace cars: insert car %d: %w", c.CarID, err)
		}

		for seat, g := range c.Passengers {
			if _, err := seatStmt.ExecContext(ctx, c.CarID, g.GuestID, seat); err != nil {
				return fmt.Errorf("replace cars: seat guest %d in car %d: %w", g.GuestID, c.CarID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace cars: commit tx: %w", err)
	}

	return nil
}

// UpdateCar applies driver/capacity changes to one car and returns the
// updated record.
func (r *PostgresCarRepository) UpdateCar(ctx context.Context, carID int, update ports.CarUpdate) (*domain.Car, error) {
	if r.DB == nil {
		return nil, errors.New("car repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `
	UPDATE cars
	SET capacity = COALESCE($1, capacity),
		driver_name = COALESCE($2, driver_name),
		driver_phone = COALESCE($3, driver_phone)
	WHERE car_id = $4;
	`, update.Capacity, update.DriverName, update.DriverPhone, carID)
	if err != nil {
		return nil, fmt.Errorf("update car: exec: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update car: rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("car %d: %w", carID, domain.ErrNotFound)
	}

	cars, err := r.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("update car: reload: %w", err)
	}
	for _, c := range cars {
		if c.CarID == carID {
			return c, nil
		}
	}

	return nil, fmt.Errorf("car %d: %w", carID, domain.ErrNotFound)
}
