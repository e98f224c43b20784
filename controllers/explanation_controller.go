package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rozanashayari/daily-poetry-backend/services"
)

// GetPoemExplanation asks the language model for an interpretation of
// the poem in the requested language.
func GetPoemExplanation(c *gin.Context) {
	poem, err := repo().GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	language := c.DefaultQuery("language", "english")

	explanation, err := services.ExplainPoem(c.Request.Context(), poem, language)
	if err != nil {
		if services.KindOf(err) != "" {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not generate explanation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"poemId":      poem.ID,
		"explanation": explanation,
	})
}
