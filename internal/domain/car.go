package domain

import (
	"fmt"
	"time"
)

// DefaultCarCapacity is used when a capacity is not supplied.
const DefaultCarCapacity = 5

// Car is a pickup vehicle holding guests that share a flight. Cars are
// recreated wholesale on every assignment run; car numbers are assigned
// sequentially across a run.
type Car struct {
	CarID        int
	Capacity     int
	FlightNumber string
	Airline      string
	Destination  string
	ETA          *time.Time
	DriverName   string
	DriverPhone  string
	Passengers   []*Guest
}

func NewCar(id int, capacity int) *Car {
	if capacity < 1 {
		capacity = DefaultCarCapacity
	}
	return &Car{
		CarID:    id,
		Capacity: capacity,
	}
}

// Board seats a single guest in the car.
func (c *Car) Board(g *Guest) error {
	if len(c.Passengers) >= c.Capacity {
		return fmt.Errorf("board car: car %d is at full capacity (capacity=%d)", c.CarID, c.Capacity)
	}
	c.Passengers = append(c.Passengers, g)
	return nil
}

// BoardAll seats multiple guests in the car.
func (c *Car) BoardAll(guests []*Guest) error {
	for _, g := range guests {
		if err := c.Board(g); err != nil {
			return err
		}
	}

	return nil
}

// PassengerIDs returns the guest ids in boarding order.
func (c *Car) PassengerIDs() []int64 {
	ids := make([]int64, 0, len(c.Passengers))
	for _, g := range c.Passengers {
		ids = append(ids, g.GuestID)
	}
	return ids
}

// Clear removes all passengers from the car.
func (c *Car) Clear() {
	c.Passengers = nil
}
