package flightdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pickup-coordination-service/internal/config"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *AviationstackProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewAviationstackProvider(config.Provider{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestAviationstackFlightStatus(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var gotQuery map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"access_key":    q.Get("access_key"),
			"airline_iata":  q.Get("airline_iata"),
			"flight_number": q.Get("flight_number"),
			"flight_date":   q.Get("flight_date"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"flight_status":"scheduled","departure":{"delay":25}}]}`))
	})

	rec, err := p.FlightStatus(context.Background(), "XY", "100", date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.VendorStatus != "scheduled" {
		t.Fatalf("vendor status = %q, want scheduled", rec.VendorStatus)
	}
	if rec.DepartureDelayMinutes != 25 {
		t.Fatalf("delay = %d, want 25", rec.DepartureDelayMinutes)
	}

	want := map[string]string{
		"access_key":    "test-key",
		"airline_iata":  "XY",
		"flight_number": "100",
		"flight_date":   "2026-03-01",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestAviationstackEmptyResult(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	})

	if _, err := p.FlightStatus(context.Background(), "XY", "100", time.Now()); err == nil {
		t.Fatal("expected error for empty vendor result")
	}
}

func TestAviationstackServerErrorIsRetriedThenSurfaced(t *testing.T) {
	calls := 0
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})

	if _, err := p.FlightStatus(context.Background(), "XY", "100", time.Now()); err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls < 2 {
		t.Fatalf("expected at least one retry, got %d calls", calls)
	}
}

func TestAviationstackRequiresKey(t *testing.T) {
	if _, err := NewAviationstackProvider(config.Provider{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
