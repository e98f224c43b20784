package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rozanashayari/daily-poetry-backend/config"
	"github.com/rozanashayari/daily-poetry-backend/services"
	"github.com/rozanashayari/daily-poetry-backend/utils"
)

func repo() *services.PoemRepository {
	return services.NewPoemRepository(config.Store)
}

func scheduler() *services.Scheduler {
	return services.NewScheduler(config.Store, repo())
}

func analytics() *services.AnalyticsService {
	return services.NewAnalyticsService(config.Store, repo())
}

func subscribers() *services.SubscriberService {
	return services.NewSubscriberService(config.Store, utils.SMTPMailer{})
}

// respondError maps the service error taxonomy onto HTTP status codes and
// the uniform failure envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindConflict:
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Println("internal error:", err)
	}
	c.JSON(status, gin.H{"success": false, "error": services.MessageOf(err)})
}
