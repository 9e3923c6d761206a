package services

import (
	"fmt"
	"slices"

	"pickup-coordination-service/internal/domain"
)

// AssignCars packs guests into capacity-bounded cars, one flight per car.
//
// Guests are grouped by the flight key of their final leg and each group
// is chunked into consecutive cars in the group's established order.
// This is first-fit-by-sequence, not bin packing: the engine never mixes
// guests from different flights into one car and does not try to
// minimize the car count across groups. Group order, in-group order and
// car numbering are all totally ordered so re-running with identical
// input yields identical output.
//
// The result is a pure function of its inputs; persisting it is the
// caller's responsibility.
func AssignCars(guests []*domain.Guest, capacity int) ([]*domain.Car, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("assign cars: capacity must be positive, got %d: %w", capacity, domain.ErrValidation)
	}

	byFlight := make(map[string][]*domain.Guest)
	for _, g := range guests {
		last := g.FinalLeg()
		if last == nil {
			return nil, fmt.Errorf("assign cars: guest %d has no legs: %w", g.GuestID, domain.ErrValidation)
		}
		byFlight[last.FlightKey()] = append(byFlight[last.FlightKey()], g)
	}

	flights := make([]string, 0, len(byFlight))
	for k := range byFlight {
		flights = append(flights, k)
	}
	slices.Sort(flights)

	cars := make([]*domain.Car, 0, len(byFlight))
	carNo := 0

	for _, flight := range flights {
		group := byFlight[flight]

		// ETA ascending, then guest creation order, so the chunking
		// below is reproducible across runs.
		slices.SortFunc(group, func(a, b *domain.Guest) int {
			ea := a.FinalLeg().ETA
			eb := b.FinalLeg().ETA
			if ea.Before(eb) {
				return -1
			}
			if ea.After(eb) {
				return 1
			}
			if a.GuestID < b.GuestID {
				return -1
			}
			if a.GuestID > b.GuestID {
				return 1
			}
			return 0
		})

		for start := 0; start < len(group); start += capacity {
			end := start + capacity
			if end > len(group) {
				end = len(group)
			}

			carNo++
			car := domain.NewCar(carNo, capacity)

			lead := group[start].FinalLeg()
			car.FlightNumber = lead.FlightNumber
			car.Airline = lead.Airline
			car.Destination = lead.Destination
			eta := lead.ETA
			car.ETA = &eta

			if err := car.BoardAll(group[start:end]); err != nil {
				return nil, fmt.Errorf("assign cars: car %d: %w", car.CarID, err)
			}

			cars = append(cars, car)
		}
	}

	return cars, nil
}
