package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Subscribe registers an email address for the daily poem delivery.
func Subscribe(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	sub, err := subscribers().Subscribe(c.Request.Context(), req.Email, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Successfully subscribed to daily poetry emails",
		"subscriber": sub,
	})
}

// Unsubscribe deactivates a subscription. Unknown addresses are treated
// as already unsubscribed.
func Unsubscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if err := subscribers().Unsubscribe(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully unsubscribed from daily poetry emails",
	})
}

// GetSubscribers lists the active subscribers.
func GetSubscribers(c *gin.Context) {
	active, totalEver, err := subscribers().List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"subscribers":         active,
		"total":               len(active),
		"totalEverSubscribed": totalEver,
	})
}
