package flightdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pickup-coordination-service/internal/ports"
)

type MockFlight struct {
	Airline      string
	FlightNumber string
	Date         string
	VendorStatus string
	DelayMinutes int
}

// MockFlightDataProvider serves canned vendor records for tests.
// Flights not registered produce an error, mirroring the real vendor's
// empty result set. Safe for concurrent use.
type MockFlightDataProvider struct {
	m map[string]ports.FlightRecord

	mu    sync.Mutex
	calls int
}

func NewMockFlightDataProvider(flights []MockFlight) *MockFlightDataProvider {
	m := make(map[string]ports.FlightRecord, len(flights))
	for _, f := range flights {
		m[f.Airline+f.FlightNumber+"|"+f.Date] = ports.FlightRecord{
			VendorStatus:          f.VendorStatus,
			DepartureDelayMinutes: f.DelayMinutes,
		}
	}
	return &MockFlightDataProvider{m: m}
}

// Calls reports how many lookups the provider has served.
func (p *MockFlightDataProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockFlightDataProvider) FlightStatus(ctx context.Context, airline, flightNumber string, date time.Time) (ports.FlightRecord, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	key := airline + flightNumber + "|" + date.Format("2006-01-02")
	rec, ok := p.m[key]
	if !ok {
		return ports.FlightRecord{}, fmt.Errorf("no vendor data for %q", key)
	}

	return rec, nil
}
