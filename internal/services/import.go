package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
)

// ImportRow is one line of a bulk guest import: a guest with a single
// inbound flight. The same shape feeds the dbtool seed file and the
// bulk-import endpoint.
type ImportRow struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Flight      string `json:"flight"`
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// DefaultImportDestination is assumed when a row omits the destination.
const DefaultImportDestination = "PHX"

// ParseImportRow validates a row and converts it to a creatable leg.
// Date is "2006-01-02", time is "15:04"; the ETA is built in UTC.
func ParseImportRow(row ImportRow) (name, phone string, leg ports.NewLeg, err error) {
	name = strings.TrimSpace(row.Name)
	if name == "" {
		return "", "", ports.NewLeg{}, fmt.Errorf("import row: name is required: %w", domain.ErrValidation)
	}

	flight := strings.TrimSpace(row.Flight)
	airline := strings.TrimSpace(row.Airline)
	origin := strings.TrimSpace(row.Origin)
	if flight == "" || airline == "" || origin == "" {
		return "", "", ports.NewLeg{}, fmt.Errorf("import row: flight, airline and origin are required: %w", domain.ErrValidation)
	}

	destination := strings.TrimSpace(row.Destination)
	if destination == "" {
		destination = DefaultImportDestination
	}

	eta, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(row.Date)+" "+strings.TrimSpace(row.Time))
	if err != nil {
		return "", "", ports.NewLeg{}, fmt.Errorf("import row: parse date/time: %v: %w", err, domain.ErrValidation)
	}

	return name, strings.TrimSpace(row.Phone), ports.NewLeg{
		FlightNumber: flight,
		Airline:      airline,
		Origin:       origin,
		Destination:  destination,
		ETA:          eta.UTC(),
		Status:       domain.StatusOnTime,
	}, nil
}

// ImportGuests validates every row up front, then creates one guest per
// row. A malformed row rejects the whole batch before anything is
// written; a store failure mid-batch leaves the earlier guests in place
// and reports how many were created.
func ImportGuests(ctx context.Context, repo ports.GuestRepository, rows []ImportRow) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("import guests: rows must not be empty: %w", domain.ErrValidation)
	}

	type parsed struct {
		name  string
		phone string
		leg   ports.NewLeg
	}
	ready := make([]parsed, 0, len(rows))
	for i, row := range rows {
		name, phone, leg, err := ParseImportRow(row)
		if err != nil {
			return 0, fmt.Errorf("import guests: row %d: %w", i+1, err)
		}
		ready = append(ready, parsed{name: name, phone: phone, leg: leg})
	}

	imported := 0
	for _, p := range ready {
		if _, err := repo.CreateGuest(ctx, p.name, p.phone, []ports.NewLeg{p.leg}); err != nil {
			return imported, fmt.Errorf("import guests: create guest %q: %w", p.name, err)
		}
		imported++
	}

	return imported, nil
}
