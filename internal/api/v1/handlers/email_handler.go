package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-followup/internal/api/errors"
	"meeting-followup/internal/api/middleware"
	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/api/v1/services"
)

// EmailHandler handles sending and the email history
type EmailHandler struct {
	emailService services.EmailService
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService services.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// Send delivers a reviewed draft.
// POST /api/v1/emails
func (h *EmailHandler) Send(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	record, err := h.emailService.Send(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List returns the full email history, newest first.
// GET /api/v1/emails
func (h *EmailHandler) List(c *gin.Context) {
	list, err := h.emailService.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get returns one history entry.
// GET /api/v1/emails/:id
func (h *EmailHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	record, err := h.emailService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete removes one history entry.
// DELETE /api/v1/emails/:id
func (h *EmailHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.emailService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Export streams the history as an Excel workbook.
// GET /api/v1/emails/export
func (h *EmailHandler) Export(c *gin.Context) {
	wb, err := h.emailService.ExportWorkbook(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("email_history_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := wb.Write(c.Writer); err != nil {
		// Headers are already out; all we can do is log via the
		// recovery middleware path.
		_ = c.Error(err)
	}
}

// Stats summarizes the history.
// GET /api/v1/stats
func (h *EmailHandler) Stats(c *gin.Context) {
	stats, err := h.emailService.Stats(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("Invalid record ID", map[string]string{
			"id": "must be a positive integer",
		})
	}
	return id, nil
}
