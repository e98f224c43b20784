package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rozanashayari/daily-poetry-backend/controllers"
	"github.com/rozanashayari/daily-poetry-backend/middleware"
	"github.com/rozanashayari/daily-poetry-backend/ws"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/init", controllers.InitData)

		// Reading surface
		api.GET("/poem/today", controllers.GetTodaysPoem)
		api.GET("/poem/random", controllers.GetRandomPoem)
		api.GET("/poems", controllers.ListPoems)
		api.GET("/poems/:id", controllers.GetPoemDetail)
		api.GET("/poems/:id/explanation", controllers.GetPoemExplanation)
		api.GET("/poems/category/:category", controllers.GetPoemsByCategory)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/search", controllers.SearchPoems)
		api.POST("/poems/:id/share", controllers.SharePoem)

		// Email subscriptions
		api.POST("/email/subscribe", controllers.Subscribe)
		api.POST("/email/unsubscribe", controllers.Unsubscribe)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", controllers.AdminLogin)

		protected := admin.Group("")
		protected.Use(middleware.RequireAdmin())

		// Poem management
		protected.POST("/poems", controllers.CreatePoem)
		protected.PUT("/poems/:id", controllers.UpdatePoem)
		protected.DELETE("/poems/:id", controllers.DeletePoem)
		protected.POST("/poems/:id/audio", controllers.GeneratePoemAudio)

		// Scheduling
		protected.POST("/schedule", controllers.SchedulePoem)
		protected.GET("/schedule", controllers.GetScheduledPoems)

		// Reporting
		protected.GET("/analytics", controllers.GetAnalytics)
		protected.GET("/email/subscribers", controllers.GetSubscribers)
	}

	r.GET("/ws/activity", ws.HandleActivityWebSocket)

	return r
}
