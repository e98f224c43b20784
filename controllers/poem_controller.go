package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/services"
	"github.com/rozanashayari/daily-poetry-backend/ws"
)

// InitData seeds the store with the sample collection. A second call is a
// no-op and reports initialized=false.
func InitData(c *gin.Context) {
	created, err := repo().Initialize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Backend initialized successfully",
		"initialized": created,
	})
}

// GetTodaysPoem returns the poem for the current date, tracking the view.
func GetTodaysPoem(c *gin.Context) {
	poem, date, err := scheduler().GetToday(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	ws.SendActivity(ws.ActivityEvent{Type: "poem_viewed", PoemID: poem.ID, Date: date})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"poem":    poem,
		"date":    date,
	})
}

// GetRandomPoem returns a random active poem, optionally scoped to a
// category and excluding one id.
func GetRandomPoem(c *gin.Context) {
	poem, err := repo().Random(c.Request.Context(), c.Query("category"), c.Query("exclude"))
	if err != nil {
		respondError(c, err)
		return
	}

	ws.SendActivity(ws.ActivityEvent{Type: "poem_viewed", PoemID: poem.ID})

	c.JSON(http.StatusOK, gin.H{"success": true, "poem": poem})
}

// ListPoems returns a filtered, paginated view of the collection.
func ListPoems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	poems, pagination, err := repo().List(c.Request.Context(), services.ListFilter{
		ActiveOnly: c.DefaultQuery("active", "true") == "true",
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"poems":      poems,
		"pagination": pagination,
	})
}

// GetPoemDetail returns a single poem by id, deleted ones included.
func GetPoemDetail(c *gin.Context) {
	poem, err := repo().GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "poem": poem})
}

// CreatePoem adds a new poem to the collection.
func CreatePoem(c *gin.Context) {
	var input models.PoemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	poem, err := repo().Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	ws.SendActivity(ws.ActivityEvent{Type: "poem_created", PoemID: poem.ID})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"poem":    poem,
		"message": "Poem added successfully",
	})
}

// UpdatePoem applies a partial update to an existing poem.
func UpdatePoem(c *gin.Context) {
	var upd models.PoemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	poem, err := repo().Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"poem":    poem,
		"message": "Poem updated successfully",
	})
}

// DeletePoem deactivates a poem, or removes it for good with
// ?permanent=true.
func DeletePoem(c *gin.Context) {
	id := c.Param("id")
	permanent := c.Query("permanent") == "true"

	var err error
	if permanent {
		err = repo().PermanentDelete(c.Request.Context(), id)
	} else {
		err = repo().SoftDelete(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Poem deactivated successfully"
	if permanent {
		message = "Poem permanently deleted"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// GetPoemsByCategory returns a shuffled sample of active poems in a
// category.
func GetPoemsByCategory(c *gin.Context) {
	category := c.Param("category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	poems, err := repo().ListByCategory(c.Request.Context(), category, limit, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"poems":    poems,
		"category": category,
		"count":    len(poems),
	})
}

// GetCategories returns every category present among active poems with
// its poem count.
func GetCategories(c *gin.Context) {
	categories, err := repo().Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
		"count":      len(categories),
	})
}

// SearchPoems runs the relevance-ranked search.
func SearchPoems(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := services.SearchFilter{
		Language: c.DefaultQuery("language", "all"),
		Category: c.Query("category"),
		Author:   c.Query("author"),
		Limit:    limit,
	}

	results, err := repo().Search(c.Request.Context(), query, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"query":   query,
		"count":   len(results),
		"filters": gin.H{
			"category": filter.Category,
			"author":   filter.Author,
			"language": filter.Language,
		},
	})
}

// SharePoem records a share on a poem and in the per-platform counters.
func SharePoem(c *gin.Context) {
	id := c.Param("id")

	// Platform is optional; an empty or malformed body means "unknown".
	var body struct {
		Platform string `json:"platform"`
	}
	_ = c.ShouldBindJSON(&body)

	shares, err := analytics().RecordShare(c.Request.Context(), id, body.Platform)
	if err != nil {
		respondError(c, err)
		return
	}

	ws.SendActivity(ws.ActivityEvent{Type: "poem_shared", PoemID: id, Platform: body.Platform})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Share tracked successfully",
		"shares":  shares,
	})
}
