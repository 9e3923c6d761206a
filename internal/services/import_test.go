package services

import (
	"context"
	"testing"
	"time"

	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
)

func TestParseImportRow(t *testing.T) {
	name, phone, leg, err := ParseImportRow(ImportRow{
		Name:    "A",
		Phone:   " 555-0100 ",
		Flight:  "100",
		Airline: "XY",
		Origin:  "LAX",
		Date:    "2026-03-01",
		Time:    "14:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if name != "A" || phone != "555-0100" {
		t.Fatalf("name/phone = %q/%q", name, phone)
	}
	if leg.Destination != DefaultImportDestination {
		t.Fatalf("destination = %q, want default %q", leg.Destination, DefaultImportDestination)
	}
	if leg.Status != domain.StatusOnTime {
		t.Fatalf("status = %s, want on_time", leg.Status)
	}

	want := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	if !leg.ETA.Equal(want) {
		t.Fatalf("eta = %v, want %v", leg.ETA, want)
	}
}

func TestParseImportRowRejectsMissingFields(t *testing.T) {
	rows := []ImportRow{
		{Flight: "100", Airline: "XY", Origin: "LAX", Date: "2026-03-01", Time: "14:30"},
		{Name: "A", Airline: "XY", Origin: "LAX", Date: "2026-03-01", Time: "14:30"},
		{Name: "A", Flight: "100", Airline: "XY", Origin: "LAX", Date: "bad", Time: "14:30"},
	}

	for i, row := range rows {
		if _, _, _, err := ParseImportRow(row); err == nil {
			t.Fatalf("row %d: expected error", i)
		}
	}
}

type countingGuestStore struct {
	ports.GuestRepository
	created int
}

func (s *countingGuestStore) CreateGuest(ctx context.Context, name, phone string, legs []ports.NewLeg) (*domain.Guest, error) {
	s.created++
	return &domain.Guest{GuestID: int64(s.created), Name: name, Phone: phone}, nil
}

func TestImportGuestsRejectsBadBatchBeforeWriting(t *testing.T) {
	store := &countingGuestStore{}

	rows := []ImportRow{
		{Name: "A", Flight: "100", Airline: "XY", Origin: "LAX", Date: "2026-03-01", Time: "14:30"},
		{Name: "", Flight: "100", Airline: "XY", Origin: "LAX", Date: "2026-03-01", Time: "14:30"},
	}

	if _, err := ImportGuests(context.Background(), store, rows); err == nil {
		t.Fatal("expected validation error")
	}
	if store.created != 0 {
		t.Fatalf("created = %d, want 0 (validation happens before any write)", store.created)
	}
}

func TestImportGuestsCreatesOnePerRow(t *testing.T) {
	store := &countingGuestStore{}

	rows := []ImportRow{
		{Name: "A", Flight: "100", Airline: "XY", Origin: "LAX", Date: "2026-03-01", Time: "14:30"},
		{Name: "B", Flight: "42", Airline: "ZZ", Origin: "SEA", Date: "2026-03-02", Time: "09:00"},
	}

	n, err := ImportGuests(context.Background(), store, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || store.created != 2 {
		t.Fatalf("imported = %d created = %d, want 2/2", n, store.created)
	}
}
