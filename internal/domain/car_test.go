package domain

import "testing"

func TestCarBoardRespectsCapacity(t *testing.T) {
	car := NewCar(1, 2)

	guests := []*Guest{
		{GuestID: 1, Name: "A"},
		{GuestID: 2, Name: "B"},
	}

	if err := car.BoardAll(guests); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(car.Passengers) != 2 {
		t.Fatalf("passengers = %d, want 2", len(car.Passengers))
	}

	if err := car.Board(&Guest{GuestID: 3, Name: "C"}); err == nil {
		t.Fatal("expected capacity error, got nil")
	}

	car.Clear()
	if len(car.Passengers) != 0 {
		t.Fatalf("passengers after Clear = %d, want 0", len(car.Passengers))
	}
}

func TestNewCarDefaultsCapacity(t *testing.T) {
	car := NewCar(1, 0)
	if car.Capacity != DefaultCarCapacity {
		t.Fatalf("capacity = %d, want %d", car.Capacity, DefaultCarCapacity)
	}
}
