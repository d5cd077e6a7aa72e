package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-followup/internal/api/middleware"
	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/api/v1/services"
)

// TaskHandler handles action item extraction and workbook sync
type TaskHandler struct {
	taskService services.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Extract pulls action items out of an email body.
// POST /api/v1/tasks/extract
func (h *TaskHandler) Extract(c *gin.Context) {
	var req dto.ExtractTasksRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	tasks := h.taskService.Extract(c.Request.Context(), req.EmailBody)

	c.JSON(http.StatusOK, dto.TasksResponse{Tasks: tasks, Count: len(tasks)})
}

// Sync writes action items for a client into the shared workbook.
// POST /api/v1/tasks/sync
func (h *TaskHandler) Sync(c *gin.Context) {
	var req dto.SyncTasksRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.taskService.Sync(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
