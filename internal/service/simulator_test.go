package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"binwatch"
)

// countingStore counts appends; safe for the simulator goroutine.
type countingStore struct {
	fakeStore
	mu    sync.Mutex
	count int
}

func (c *countingStore) Append(ctx context.Context, r binwatch.Reading) (binwatch.Reading, error) {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	return r, nil
}

func (c *countingStore) appends() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func TestSimulator_NextReading_AlwaysValid(t *testing.T) {
	t.Parallel()

	sim := NewSimulatorService(&fakeStore{})
	for i := 0; i < 1000; i++ {
		r := sim.nextReading()
		if err := validateNewReading(NewReading{
			BinID:       r.BinID,
			WeightKg:    r.WeightKg,
			MoistureRaw: r.MoistureRaw,
			WasteTag:    r.WasteTag,
		}); err != nil {
			t.Fatalf("simulator produced invalid reading %+v: %v", r, err)
		}
		if r.WeightKg > simMaxWeightKg {
			t.Fatalf("weight %v above max %v", r.WeightKg, simMaxWeightKg)
		}
	}
}

func TestSimulator_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	store := &countingStore{}
	sim := NewSimulatorService(store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, time.Millisecond)
		close(done)
	}()

	// Let a few ticks fire, then stop.
	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop after cancel")
	}

	if store.appends() == 0 {
		t.Fatal("simulator never appended a reading")
	}
}
