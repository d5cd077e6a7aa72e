package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-followup/internal/api/errors"
	"meeting-followup/internal/api/middleware"
	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/api/v1/services"
)

// MeetingHandler handles recording uploads and draft generation
type MeetingHandler struct {
	meetingService services.MeetingService
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService services.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

// Upload accepts a meeting recording and returns a draft follow-up email.
// POST /api/v1/meetings/upload
// (multipart/form-data: file, recipient_email, recipient_name)
func (h *MeetingHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("Missing recording", map[string]string{
			"file": "a recording file is required",
		}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, errors.WrapError(err, errors.KindBadRequest, "Failed to read upload"))
		return
	}
	defer file.Close()

	recipientName := c.PostForm("recipient_name")

	draft, err := h.meetingService.CreateDraft(c.Request.Context(), file, fileHeader.Filename, recipientName)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	// The recipient address rides along so the client can prefill the
	// send form without keeping its own state.
	draft.RecipientEmail = c.PostForm("recipient_email")

	c.JSON(http.StatusCreated, draft)
}

// Regenerate produces a fresh email body from an existing transcript.
// POST /api/v1/emails/generate
func (h *MeetingHandler) Regenerate(c *gin.Context) {
	var req dto.GenerateEmailRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	draft, err := h.meetingService.Regenerate(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}
