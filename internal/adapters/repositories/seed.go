package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pickup-coordination-service/internal/ports"
	"pickup-coordination-service/internal/services"
)

// SeedFromJSON populates the store with guests from a JSON file of
// bulk-import rows (same shape the import endpoint accepts).
func SeedFromJSON(ctx context.Context, repo ports.GuestRepository, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed guests: read %q: %w", jsonPath, err)
	}

	var rows []services.ImportRow
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return fmt.Errorf("seed guests: parse json: %w", err)
	}

	if _, err := services.ImportGuests(ctx, repo, rows); err != nil {
		return fmt.Errorf("seed guests: %w", err)
	}

	return nil
}
