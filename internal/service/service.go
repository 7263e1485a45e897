package service

import (
	"context"
	"time"

	"binwatch"
	"binwatch/internal/repository"
)

// Readings exposes validated ingestion and retrieval of raw readings.
type Readings interface {
	Append(ctx context.Context, in NewReading) (binwatch.Reading, error)
	Recent(ctx context.Context, limit int) ([]binwatch.Reading, error)
}

// Analytics exposes the derived views: daily buckets, per-bin stats,
// segregation scores and the top/bottom ranking. All derived values are
// recomputed from the reading collection on every call.
type Analytics interface {
	Daily(ctx context.Context, days int) ([]binwatch.DailyAggregate, error)
	BinStats(ctx context.Context, days int) ([]binwatch.BinStats, error)
	Score(ctx context.Context, binID string) (binwatch.BinScore, error)
	TopBottom(ctx context.Context) (binwatch.Ranking, error)
}

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Simulator feeds the store with synthetic demo readings.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// AuthConfig carries the JWT settings sourced from config.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Readings
	Analytics
	Authorization
	Simulator
}

// NewService wires the repository layer into the concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Readings:      NewReadingsService(repos.Readings),
		Analytics:     NewAnalyticsService(repos.Readings),
		Authorization: NewAuthService(repos.Auth, auth),
		Simulator:     NewSimulatorService(repos.Readings),
	}
}
