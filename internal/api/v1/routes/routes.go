package routes

import (
	"github.com/gin-gonic/gin"

	"meeting-followup/internal/api/v1/handlers"
	"meeting-followup/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	MeetingService services.MeetingService
	EmailService   services.EmailService
	TaskService    services.TaskService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Meeting routes
	meetingHandler := handlers.NewMeetingHandler(container.MeetingService)
	meetings := router.Group("/meetings")
	{
		meetings.POST("/upload", meetingHandler.Upload)
	}

	// Email routes
	emailHandler := handlers.NewEmailHandler(container.EmailService)
	emails := router.Group("/emails")
	{
		emails.POST("/generate", meetingHandler.Regenerate)
		emails.POST("/send", emailHandler.Send)
		emails.GET("", emailHandler.List)
		emails.GET("/export", emailHandler.Export)
		emails.GET("/:id", emailHandler.Get)
		emails.DELETE("/:id", emailHandler.Delete)
	}

	// Task routes
	taskHandler := handlers.NewTaskHandler(container.TaskService)
	taskGroup := router.Group("/tasks")
	{
		taskGroup.POST("/extract", taskHandler.Extract)
		taskGroup.POST("/sync", taskHandler.Sync)
	}

	// Stats route
	router.GET("/stats", emailHandler.Stats)
}
