package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rozanashayari/daily-poetry-backend/ws"
)

// SchedulePoem pins a poem to a calendar date. Scheduling over an
// occupied date requires overwrite=true.
func SchedulePoem(c *gin.Context) {
	var req struct {
		PoemID    string `json:"poemId"`
		Date      string `json:"date"`
		Overwrite bool   `json:"overwrite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if req.PoemID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing required fields: poemId, date"})
		return
	}

	poem, err := scheduler().Schedule(c.Request.Context(), req.PoemID, req.Date, req.Overwrite)
	if err != nil {
		respondError(c, err)
		return
	}

	ws.SendActivity(ws.ActivityEvent{Type: "poem_scheduled", PoemID: poem.ID, Date: req.Date})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Poem scheduled for " + req.Date,
		"poem":    poem,
		"date":    req.Date,
	})
}

// GetScheduledPoems walks the date range (defaulting to the next 30 days)
// and returns the dates that have a poem pinned.
func GetScheduledPoems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	scheduled, err := scheduler().ListScheduled(c.Request.Context(), c.Query("startDate"), c.Query("endDate"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"scheduledPoems": scheduled,
		"count":          len(scheduled),
	})
}
