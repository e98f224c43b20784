package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAnalytics computes the aggregate report from the current state of
// the collection and the global counters.
func GetAnalytics(c *gin.Context) {
	report, err := analytics().Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analytics": report,
	})
}
