package services

import (
	"testing"
	"time"

	"pickup-coordination-service/internal/domain"
)

func TestReconcile(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-1 * time.Hour)
	future := now.Add(1 * time.Hour)

	available := func(s domain.FlightStatus) Resolution {
		return Resolution{Status: s, Available: true}
	}
	unavailable := Resolution{}

	cases := []struct {
		name    string
		current domain.FlightStatus
		res     Resolution
		eta     time.Time
		want    domain.FlightStatus
	}{
		{"vendor replaces current", domain.StatusOnTime, available(domain.StatusDelayed), future, domain.StatusDelayed},
		{"vendor confirms landed", domain.StatusDelayed, available(domain.StatusLanded), past, domain.StatusLanded},
		{"unavailable keeps delayed", domain.StatusDelayed, unavailable, past, domain.StatusDelayed},
		{"unavailable keeps future on-time", domain.StatusOnTime, unavailable, future, domain.StatusOnTime},
		{"past-eta on-time falls back to landed", domain.StatusOnTime, unavailable, past, domain.StatusLanded},
		{"landed is sticky", domain.StatusLanded, available(domain.StatusDelayed), future, domain.StatusLanded},
		{"cancelled is sticky", domain.StatusCancelled, available(domain.StatusOnTime), past, domain.StatusCancelled},
		{"cancelled sticky when unavailable", domain.StatusCancelled, unavailable, past, domain.StatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconcile(tc.current, tc.res, tc.eta, now)
			if got != tc.want {
				t.Fatalf("Reconcile(%s) = %s, want %s", tc.current, got, tc.want)
			}

			// Idempotence: feeding the result back with the same inputs
			// must not change it again.
			again := Reconcile(got, tc.res, tc.eta, now)
			if again != got {
				t.Fatalf("second Reconcile changed %s to %s", got, again)
			}
		})
	}
}
