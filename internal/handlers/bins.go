package handlers

import (
	"errors"
	"net/http"

	"binwatch/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadBinStats = "failed to load bin stats"
	errLoadScore    = "failed to compute score"
	errLoadRanking  = "failed to compute ranking"
	errBinNotFound  = "no readings for this bin"
)

// @Summary      Per-bin statistics
// @Description  Totals, mean weight and moisture, and entry counts per bin over the trailing window (default 7 days).
// @Tags         bins
// @Produce      json
// @Param        days  query     int  false  "Trailing window in days"  example(7)
// @Success      200   {array}   binwatch.BinStats
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/bins/stats [get]
func (h *Handler) binStats(c *gin.Context) {
	days, ok := parseDaysQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDays})
		return
	}
	out, err := h.services.Analytics.BinStats(c.Request.Context(), days)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadBinStats, "bin_stats_failed", err, "days", days)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Segregation score for one bin
// @Description  0–100 rule-based score over the bin's readings. 404 when the bin has no readings.
// @Tags         bins
// @Produce      json
// @Param        binId  path      string  true  "Bin identifier"
// @Success      200    {object}  binwatch.BinScore
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/bins/score/{binId} [get]
func (h *Handler) binScore(c *gin.Context) {
	binID := c.Param("binId")

	score, err := h.services.Analytics.Score(c.Request.Context(), binID)
	if err != nil {
		if errors.Is(err, service.ErrNoReadings) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBinNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadScore, "bin_score_failed", err, "bin", binID)
		return
	}
	c.JSON(http.StatusOK, score)
}

// @Summary      Top and bottom bins
// @Description  Best 10 and worst 10 bins by segregation score.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  binwatch.Ranking
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/admin/top [get]
// @Security     BearerAuth
func (h *Handler) topBins(c *gin.Context) {
	ranking, err := h.services.Analytics.TopBottom(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadRanking, "ranking_failed", err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
