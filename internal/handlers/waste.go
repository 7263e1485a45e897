package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"binwatch/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref = "invalid body: "
	errInvalidDays     = "invalid 'days': must be a positive integer"
	errStoreReading    = "failed to store reading"
	errLoadRecent      = "failed to load recent readings"
	errLoadDaily       = "failed to load daily aggregates"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// parseDaysQuery reads the optional ?days=N parameter. Absent means 0,
// which the service resolves to its default window.
func parseDaysQuery(c *gin.Context) (int, bool) {
	qs := c.Query("days")
	if qs == "" {
		return 0, true
	}
	days, err := strconv.Atoi(qs)
	if err != nil || days < 1 {
		return 0, false
	}
	return days, true
}

// Request DTO for reading ingestion.
type readingRequest struct {
	BinID       string  `json:"binId" binding:"required"`
	WeightKg    float64 `json:"weightKg"`
	MoistureRaw int     `json:"moistureRaw"`
	WasteTag    string  `json:"wasteTag" binding:"required"`
}

// CreateReadingRequest is an exported model for Swagger docs of the ingestion payload.
type CreateReadingRequest struct {
	// Physical bin identifier
	BinID string `json:"binId" example:"bin-north-01"`
	// Measured weight in kilograms, >= 0
	WeightKg float64 `json:"weightKg" example:"2.4"`
	// Raw moisture sensor value, >= 0
	MoistureRaw int `json:"moistureRaw" example:"610"`
	// Waste category. Allowed: organic, plastic, paper, metal, glass
	WasteTag string `json:"wasteTag" example:"organic"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Record a reading
// @Description  Validates the payload, assigns id and timestamp, persists.
// @Tags         waste
// @Accept       json
// @Produce      json
// @Param        body  body      CreateReadingRequest  true  "Reading payload"
// @Success      201   {object}  binwatch.Reading
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/waste [post]
func (h *Handler) createReading(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	stored, err := h.services.Readings.Append(c.Request.Context(), service.NewReading{
		BinID:       req.BinID,
		WeightKg:    req.WeightKg,
		MoistureRaw: req.MoistureRaw,
		WasteTag:    req.WasteTag,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidReading) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreReading, "reading_append_failed", err, "bin", req.BinID)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// @Summary      Recent readings
// @Description  Up to 50 most recent readings, newest first.
// @Tags         waste
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, readings"
// @Failure      500  {object}  map[string]string
// @Router       /api/waste/recent [get]
func (h *Handler) recentReadings(c *gin.Context) {
	readings, err := h.services.Readings.Recent(c.Request.Context(), 0)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadRecent, "readings_recent_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(readings),
		"readings": readings,
	})
}

// @Summary      Daily aggregates
// @Description  Per-day totals for the trailing window (default 7 days, capped at 30). Days without readings are omitted.
// @Tags         waste
// @Produce      json
// @Param        days  query     int  false  "Trailing window in days"  example(7)
// @Success      200   {array}   binwatch.DailyAggregate
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/waste/daily [get]
func (h *Handler) dailyAggregates(c *gin.Context) {
	days, ok := parseDaysQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDays})
		return
	}
	out, err := h.services.Analytics.Daily(c.Request.Context(), days)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadDaily, "daily_aggregate_failed", err, "days", days)
		return
	}
	c.JSON(http.StatusOK, out)
}
