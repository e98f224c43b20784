package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/services"
	"github.com/rozanashayari/daily-poetry-backend/utils"
)

// GeneratePoemAudio synthesizes a spoken recitation of a poem in the
// requested language, uploads the MP3 and records the public URL in the
// poem's metadata.
func GeneratePoemAudio(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Language string  `json:"language"`
		Rate     float64 `json:"rate"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.Language == "" {
		req.Language = "urdu"
	}
	if req.Rate == 0 {
		req.Rate = 0.9
	}

	r := repo()
	poem, err := r.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	var text string
	switch req.Language {
	case "urdu":
		text = poem.Urdu
	case "hindi":
		text = poem.Hindi
	case "english":
		text = poem.English
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "language must be urdu, hindi or english"})
		return
	}

	audio, err := services.SynthesizeRecitation(c.Request.Context(), text, req.Language, req.Rate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "speech synthesis failed"})
		return
	}

	filename := fmt.Sprintf("%s_%s_%d.mp3", poem.ID, req.Language, time.Now().Unix())
	url, err := utils.UploadAudioToSupabase(audio, filename, "audio/mpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "audio upload failed"})
		return
	}

	updated, err := r.Update(c.Request.Context(), id, models.PoemUpdate{
		Metadata: map[string]any{
			"audioAvailable":          true,
			"audioUrl:" + req.Language: url,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Audio generated successfully",
		"audioUrl": url,
		"language": req.Language,
		"poem":     updated,
	})
}
