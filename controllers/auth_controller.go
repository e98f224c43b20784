package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/rozanashayari/daily-poetry-backend/utils"
)

// AdminLogin exchanges the admin password for a signed token. Prefer
// ADMIN_PASSWORD_HASH (bcrypt); plain ADMIN_PASSWORD is the fallback for
// local development.
func AdminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "password is required"})
		return
	}

	ok := false
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		ok = bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) == nil
	} else if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
		ok = req.Password == plain
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid password"})
		return
	}

	token, err := utils.GenerateToken("admin", "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
