package service

import (
	"context"
	"math/rand"
	"time"

	"binwatch"
	"binwatch/internal/repository"
)

// Demo fleet the simulator writes readings for.
var simBins = []string{
	"bin-north-01", "bin-north-02", "bin-east-01", "bin-east-02",
	"bin-south-01", "bin-west-01", "bin-west-02", "bin-central-01",
}

var simTags = []string{
	binwatch.TagOrganic, binwatch.TagPlastic, binwatch.TagPaper,
	binwatch.TagMetal, binwatch.TagGlass,
}

// Value ranges for synthetic readings. Organic waste trends wetter so the
// generated fleet spreads across the score thresholds.
const (
	simMaxWeightKg     = 5.0
	simMaxMoistureRaw  = 700
	simOrganicMoistMin = 400
	simOrganicMoistMax = 900
)

// SimulatorService appends synthetic readings at a fixed interval so the
// dashboard has data to show out of the box.
type SimulatorService struct {
	store repository.ReadingStore
	rng   *rand.Rand
}

func NewSimulatorService(store repository.ReadingStore) *SimulatorService {
	return &SimulatorService{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ticks at the given interval until ctx is canceled, appending one
// random reading per tick. Store errors are skipped; the next tick retries.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = s.store.Append(ctx, s.nextReading())
		}
	}
}

// nextReading produces one synthetic observation.
func (s *SimulatorService) nextReading() binwatch.Reading {
	tag := simTags[s.rng.Intn(len(simTags))]

	moisture := s.rng.Intn(simMaxMoistureRaw + 1)
	if tag == binwatch.TagOrganic {
		moisture = simOrganicMoistMin + s.rng.Intn(simOrganicMoistMax-simOrganicMoistMin+1)
	}

	return binwatch.Reading{
		BinID:       simBins[s.rng.Intn(len(simBins))],
		WeightKg:    float64(int(s.rng.Float64()*simMaxWeightKg*100)) / 100, // 2 decimals
		MoistureRaw: moisture,
		WasteTag:    tag,
	}
}
