package flightdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pickup-coordination-service/internal/config"
	"pickup-coordination-service/internal/platform/obs"
	"pickup-coordination-service/internal/ports"
)

// AviationstackProvider implements FlightDataProvider against the
// aviationstack real-time flights endpoint.
//
// It issues one lookup per (airline+flight, date) with retry/backoff on
// transient failures. The provider is safe for concurrent use. It never
// interprets failures: empty results and HTTP errors surface as errors
// for the resolver to absorb.
type AviationstackProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewAviationstackProvider(cfg config.Provider) (*AviationstackProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("flight data api key is empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.aviationstack.com"
	}

	return &AviationstackProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
	}, nil
}

type flightsResponse struct {
	Data []struct {
		FlightStatus string `json:"flight_status"`
		Departure    struct {
			Delay *int `json:"delay"`
		} `json:"departure"`
	} `json:"data"`
}

// FlightStatus fetches the vendor record for one flight on one date.
func (p *AviationstackProvider) FlightStatus(
	ctx context.Context,
	airline string,
	flightNumber string,
	date time.Time,
) (_ ports.FlightRecord, err error) {
	defer obs.Time(ctx, "aviationstack.FlightStatus")(&err)

	if airline == "" || flightNumber == "" {
		return ports.FlightRecord{}, errors.New("flight status: airline and flight number must be non-empty")
	}

	endpoint := p.baseURL + "/v1/flights"
	flightDate := date.Format("2006-01-02")

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("access_key", p.apiKey)
		q.Set("airline_iata", airline)
		q.Set("flight_number", flightNumber)
		q.Set("flight_date", flightDate)
		req.URL.RawQuery = q.Encode()

		return req, nil
	})
	if err != nil {
		return ports.FlightRecord{}, fmt.Errorf("flight status request failed: %w", err)
	}
	defer resp.Body.Close()

	var fr flightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return ports.FlightRecord{}, fmt.Errorf("decode flights response: %w", err)
	}

	if len(fr.Data) == 0 {
		return ports.FlightRecord{}, fmt.Errorf(
			"no vendor data for flight %s%s on %s",
			airline, flightNumber, flightDate,
		)
	}

	first := fr.Data[0]
	rec := ports.FlightRecord{VendorStatus: first.FlightStatus}
	if first.Departure.Delay != nil {
		rec.DepartureDelayMinutes = *first.Departure.Delay
	}

	return rec, nil
}
