package handlers

import (
	"context"
	"net/http"

	"binwatch"
	"binwatch/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockReadings struct {
	appendResp binwatch.Reading
	appendErr  error
	recentResp []binwatch.Reading
	recentErr  error

	lastAppend  service.NewReading
	lastLimit   int
	appendCalls int
}

func (m *mockReadings) Append(ctx context.Context, in service.NewReading) (binwatch.Reading, error) {
	m.appendCalls++
	m.lastAppend = in
	return m.appendResp, m.appendErr
}

func (m *mockReadings) Recent(ctx context.Context, limit int) ([]binwatch.Reading, error) {
	m.lastLimit = limit
	return m.recentResp, m.recentErr
}

type mockAnalytics struct {
	dailyResp []binwatch.DailyAggregate
	dailyErr  error
	statsResp []binwatch.BinStats
	statsErr  error
	scoreResp binwatch.BinScore
	scoreErr  error
	rankResp  binwatch.Ranking
	rankErr   error

	lastDailyDays int
	lastStatsDays int
	lastScoreBin  string
}

func (m *mockAnalytics) Daily(ctx context.Context, days int) ([]binwatch.DailyAggregate, error) {
	m.lastDailyDays = days
	return m.dailyResp, m.dailyErr
}

func (m *mockAnalytics) BinStats(ctx context.Context, days int) ([]binwatch.BinStats, error) {
	m.lastStatsDays = days
	return m.statsResp, m.statsErr
}

func (m *mockAnalytics) Score(ctx context.Context, binID string) (binwatch.BinScore, error) {
	m.lastScoreBin = binID
	return m.scoreResp, m.scoreErr
}

func (m *mockAnalytics) TopBottom(ctx context.Context) (binwatch.Ranking, error) {
	return m.rankResp, m.rankErr
}

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
