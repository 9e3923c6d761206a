package ports

import (
	"context"

	"pickup-coordination-service/internal/domain"
)

// CarUpdate carries the mutable fields of a car; nil fields are left
// unchanged.
type CarUpdate struct {
	Capacity    *int
	DriverName  *string
	DriverPhone *string
}

// Port: persistence for assignment runs. Cars are replaced wholesale on
// every run; there is no incremental reassignment.
type CarRepository interface {
	// ListCars returns all cars in car-number order with their
	// passenger guests attached.
	ListCars(ctx context.Context) ([]*domain.Car, error)

	// ReplaceAll clears every existing car and passenger row and stores
	// the given cars in a single transaction.
	ReplaceAll(ctx context.Context, cars []*domain.Car) error

	// UpdateCar applies driver/capacity changes to one car.
	UpdateCar(ctx context.Context, carID int, update CarUpdate) (*domain.Car, error)
}
