package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"binwatch"
	"binwatch/internal/repository"
)

// defaultRecentLimit caps the recent-readings listing.
const defaultRecentLimit = 50

// ErrInvalidReading marks a reading rejected before it reaches the store.
// Handlers map it to a 400 response with errors.Is.
var ErrInvalidReading = errors.New("invalid reading")

// NewReading is the ingestion payload before the store assigns id/timestamp.
type NewReading struct {
	BinID       string
	WeightKg    float64
	MoistureRaw int
	WasteTag    string
}

type ReadingsService struct {
	store repository.ReadingStore
}

func NewReadingsService(store repository.ReadingStore) *ReadingsService {
	return &ReadingsService{store: store}
}

// validateNewReading enforces the reading invariants: non-empty bin id,
// non-negative weight and moisture, known waste tag.
func validateNewReading(in NewReading) error {
	if strings.TrimSpace(in.BinID) == "" {
		return fmt.Errorf("%w: binId is required", ErrInvalidReading)
	}
	if in.WeightKg < 0 {
		return fmt.Errorf("%w: weightKg must be >= 0", ErrInvalidReading)
	}
	if in.MoistureRaw < 0 {
		return fmt.Errorf("%w: moistureRaw must be >= 0", ErrInvalidReading)
	}
	if !binwatch.ValidWasteTag(in.WasteTag) {
		return fmt.Errorf("%w: wasteTag must be one of organic, plastic, paper, metal, glass", ErrInvalidReading)
	}
	return nil
}

// Append validates the payload and hands it to the store, which assigns
// id and timestamp and persists.
func (s *ReadingsService) Append(ctx context.Context, in NewReading) (binwatch.Reading, error) {
	if err := validateNewReading(in); err != nil {
		return binwatch.Reading{}, err
	}
	return s.store.Append(ctx, binwatch.Reading{
		BinID:       strings.TrimSpace(in.BinID),
		WeightKg:    in.WeightKg,
		MoistureRaw: in.MoistureRaw,
		WasteTag:    in.WasteTag,
	})
}

// Recent returns up to limit readings, newest first. Non-positive or
// oversized limits fall back to the default cap.
func (s *ReadingsService) Recent(ctx context.Context, limit int) ([]binwatch.Reading, error) {
	if limit <= 0 || limit > defaultRecentLimit {
		limit = defaultRecentLimit
	}
	return s.store.Recent(ctx, limit)
}
