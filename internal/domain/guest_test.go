package domain

import (
	"testing"
	"time"
)

func TestGuestFinalLeg(t *testing.T) {
	eta1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	eta2 := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)

	guest := &Guest{
		GuestID: 7,
		Name:    "A",
		Legs: []*FlightLeg{
			{LegOrder: 1, FlightNumber: "200", Airline: "ZZ", Destination: "PHX", ETA: eta2},
			{LegOrder: 0, FlightNumber: "100", Airline: "XY", Destination: "DEN", ETA: eta1},
		},
	}

	last := guest.FinalLeg()
	if last == nil {
		t.Fatal("FinalLeg returned nil")
	}
	if last.FlightNumber != "200" {
		t.Fatalf("final leg flight = %q, want %q", last.FlightNumber, "200")
	}
	if guest.FinalDestination() != "PHX" {
		t.Fatalf("final destination = %q, want PHX", guest.FinalDestination())
	}

	gotETA := guest.FinalETA()
	if gotETA == nil || !gotETA.Equal(eta2) {
		t.Fatalf("final eta = %v, want %v", gotETA, eta2)
	}
}

func TestGuestFinalLegEmpty(t *testing.T) {
	guest := &Guest{GuestID: 1, Name: "A"}

	if guest.FinalLeg() != nil {
		t.Fatal("expected nil final leg for guest without loaded legs")
	}
	if guest.FinalETA() != nil {
		t.Fatal("expected nil final eta for guest without loaded legs")
	}
}
