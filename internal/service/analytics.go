package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"binwatch"
	"binwatch/internal/repository"
)

// Segregation score formula: start at 100, subtract the wetness and weight
// penalties (highest matching threshold only, per step), add the sample
// bonus, clamp to [0, 100]. The cutoffs come from the original rule set and
// are kept as-is.
const (
	baseScore = 100

	moistureHighRaw     = 750
	moistureHighPenalty = 30
	moistureWarnRaw     = 600
	moistureWarnPenalty = 15

	weightHeavyKg      = 3.0
	weightHeavyPenalty = 20
	weightBulkyKg      = 1.5
	weightBulkyPenalty = 7

	sampleBonusEntries = 15
	sampleBonus        = 5
)

// Query window bounds: trailing days default to a week, capped at a month.
const (
	defaultWindowDays = 7
	maxWindowDays     = 30
)

// rankSize is how many performers and offenders the ranking returns.
const rankSize = 10

// ErrNoReadings signals a score request for a bin with zero readings.
// Handlers map it to a 404 response.
var ErrNoReadings = errors.New("no readings for bin")

type AnalyticsService struct {
	store repository.ReadingStore
	now   func() time.Time // injectable for deterministic tests
}

func NewAnalyticsService(store repository.ReadingStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// clampWindow normalizes a trailing-days parameter: default when
// non-positive, capped at the max window.
func clampWindow(days int) int {
	if days <= 0 {
		return defaultWindowDays
	}
	if days > maxWindowDays {
		return maxWindowDays
	}
	return days
}

// dayKey truncates a timestamp to its calendar date in UTC, the fixed
// reference timezone for bucketing.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// aggregateDaily buckets readings by calendar day for the trailing days
// window ending at now. Days with no readings produce no bucket. Output is
// ascending by date.
func aggregateDaily(readings []binwatch.Reading, days int, now time.Time) []binwatch.DailyAggregate {
	days = clampWindow(days)
	cutoff := startOfDayUTC(now).AddDate(0, 0, -(days - 1))

	type acc struct {
		totalKg     float64
		moistureSum int
		count       int
	}
	buckets := make(map[string]*acc)
	for _, r := range readings {
		if r.Timestamp.Before(cutoff) {
			continue
		}
		key := dayKey(r.Timestamp)
		a := buckets[key]
		if a == nil {
			a = &acc{}
			buckets[key] = a
		}
		a.totalKg += r.WeightKg
		a.moistureSum += r.MoistureRaw
		a.count++
	}

	out := make([]binwatch.DailyAggregate, 0, len(buckets))
	for key, a := range buckets {
		out = append(out, binwatch.DailyAggregate{
			Date:        key,
			TotalKg:     a.totalKg,
			AvgMoisture: float64(a.moistureSum) / float64(a.count),
			Count:       a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// aggregateBins groups readings by bin and computes totals and means.
// Output is sorted by bin id for stable responses.
func aggregateBins(readings []binwatch.Reading) []binwatch.BinStats {
	type acc struct {
		totalKg     float64
		moistureSum int
		count       int
	}
	byBin := make(map[string]*acc)
	for _, r := range readings {
		a := byBin[r.BinID]
		if a == nil {
			a = &acc{}
			byBin[r.BinID] = a
		}
		a.totalKg += r.WeightKg
		a.moistureSum += r.MoistureRaw
		a.count++
	}

	out := make([]binwatch.BinStats, 0, len(byBin))
	for id, a := range byBin {
		out = append(out, binwatch.BinStats{
			BinID:       id,
			TotalKg:     a.totalKg,
			AvgWeight:   a.totalKg / float64(a.count),
			AvgMoisture: float64(a.moistureSum) / float64(a.count),
			Entries:     a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BinID < out[j].BinID })
	return out
}

// scoreFromStats applies the threshold rules to already-computed bin stats.
// Entries must be >= 1.
func scoreFromStats(st binwatch.BinStats) int {
	score := baseScore

	switch {
	case st.AvgMoisture > moistureHighRaw:
		score -= moistureHighPenalty
	case st.AvgMoisture > moistureWarnRaw:
		score -= moistureWarnPenalty
	}

	switch {
	case st.AvgWeight > weightHeavyKg:
		score -= weightHeavyPenalty
	case st.AvgWeight > weightBulkyKg:
		score -= weightBulkyPenalty
	}

	if st.Entries > sampleBonusEntries {
		score += sampleBonus
	}

	if score < 0 {
		score = 0
	}
	if score > baseScore {
		score = baseScore
	}
	return score
}

// scoreBin computes the segregation score over one bin's readings.
// An empty set is an error: a bin with no readings cannot be scored.
func scoreBin(readings []binwatch.Reading) (binwatch.BinScore, error) {
	if len(readings) == 0 {
		return binwatch.BinScore{}, ErrNoReadings
	}
	st := aggregateBins(readings)[0]
	return binwatch.BinScore{
		BinID:       st.BinID,
		Score:       scoreFromStats(st),
		TotalKg:     st.TotalKg,
		AvgWeight:   st.AvgWeight,
		AvgMoisture: st.AvgMoisture,
		Entries:     st.Entries,
	}, nil
}

// rankBins sorts scored bins best-first and slices out the top n performers
// and the bottom n offenders (offenders in ascending score order, from the
// sorted tail). With fewer than n bins both lists contain all of them.
func rankBins(scored []binwatch.BinScore, n int) binwatch.Ranking {
	sorted := make([]binwatch.BinScore, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].BinID < sorted[j].BinID
	})

	top := n
	if top > len(sorted) {
		top = len(sorted)
	}
	performers := make([]binwatch.BinScore, top)
	copy(performers, sorted[:top])

	offenders := make([]binwatch.BinScore, 0, top)
	for i := len(sorted) - 1; i >= len(sorted)-top; i-- {
		offenders = append(offenders, sorted[i])
	}

	return binwatch.Ranking{Performers: performers, Offenders: offenders}
}

// Daily returns the trailing-window daily aggregates.
func (s *AnalyticsService) Daily(ctx context.Context, days int) ([]binwatch.DailyAggregate, error) {
	days = clampWindow(days)
	readings, err := s.store.InRange(ctx, days)
	if err != nil {
		return nil, err
	}
	return aggregateDaily(readings, days, s.now()), nil
}

// BinStats returns per-bin aggregates over the trailing window.
func (s *AnalyticsService) BinStats(ctx context.Context, days int) ([]binwatch.BinStats, error) {
	readings, err := s.store.InRange(ctx, clampWindow(days))
	if err != nil {
		return nil, err
	}
	return aggregateBins(readings), nil
}

// Score computes the segregation score for one bin over its full history.
func (s *AnalyticsService) Score(ctx context.Context, binID string) (binwatch.BinScore, error) {
	readings, err := s.store.ByBin(ctx, binID)
	if err != nil {
		return binwatch.BinScore{}, err
	}
	return scoreBin(readings)
}

// TopBottom ranks all bins seen in the widest query window. Bins without
// readings never appear: only observed bins have stats to score.
func (s *AnalyticsService) TopBottom(ctx context.Context) (binwatch.Ranking, error) {
	readings, err := s.store.InRange(ctx, maxWindowDays)
	if err != nil {
		return binwatch.Ranking{}, err
	}

	stats := aggregateBins(readings)
	scored := make([]binwatch.BinScore, 0, len(stats))
	for _, st := range stats {
		scored = append(scored, binwatch.BinScore{
			BinID:       st.BinID,
			Score:       scoreFromStats(st),
			TotalKg:     st.TotalKg,
			AvgWeight:   st.AvgWeight,
			AvgMoisture: st.AvgMoisture,
			Entries:     st.Entries,
		})
	}
	return rankBins(scored, rankSize), nil
}

// startOfDayUTC truncates t to midnight UTC.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
