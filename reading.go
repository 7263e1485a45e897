package binwatch

import "time"

// Waste tags accepted by the ingestion endpoint.
const (
	TagOrganic = "organic"
	TagPlastic = "plastic"
	TagPaper   = "paper"
	TagMetal   = "metal"
	TagGlass   = "glass"
)

// ValidWasteTag reports whether tag is one of the known waste categories.
func ValidWasteTag(tag string) bool {
	switch tag {
	case TagOrganic, TagPlastic, TagPaper, TagMetal, TagGlass:
		return true
	}
	return false
}

// Reading is a single sensor observation for a bin. Immutable once stored:
// the store assigns ID and Timestamp and never updates or deletes records.
type Reading struct {
	ID          string    `json:"id"`
	BinID       string    `json:"binId"`
	WeightKg    float64   `json:"weightKg"`    // ≥ 0
	MoistureRaw int       `json:"moistureRaw"` // ≥ 0, raw sensor units
	WasteTag    string    `json:"wasteTag"`    // organic | plastic | paper | metal | glass
	Timestamp   time.Time `json:"timestamp"`   // assigned by the store, UTC
}

// DailyAggregate is one calendar-day bucket of readings.
type DailyAggregate struct {
	Date        string  `json:"date"` // YYYY-MM-DD, UTC
	TotalKg     float64 `json:"totalKg"`
	AvgMoisture float64 `json:"avgMoisture"`
	Count       int     `json:"count"`
}

// BinStats is the per-bin aggregate over a set of readings.
type BinStats struct {
	BinID       string  `json:"binId"`
	TotalKg     float64 `json:"totalKg"`
	AvgWeight   float64 `json:"avgWeight"`
	AvgMoisture float64 `json:"avgMoisture"`
	Entries     int     `json:"entries"`
}

// BinScore is BinStats plus the derived 0–100 segregation score.
type BinScore struct {
	BinID       string  `json:"binId,omitempty"`
	Score       int     `json:"score"`
	TotalKg     float64 `json:"totalKg"`
	AvgWeight   float64 `json:"avgWeight"`
	AvgMoisture float64 `json:"avgMoisture"`
	Entries     int     `json:"entries"`
}

// Ranking is the admin top/bottom view: best and worst scored bins.
type Ranking struct {
	Performers []BinScore `json:"performers"`
	Offenders  []BinScore `json:"offenders"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}
