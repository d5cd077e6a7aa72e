package dto

import (
	"strings"
	"time"

	"meeting-followup/internal/api/errors"
	"meeting-followup/internal/app/model"
)

// DefaultSubject is used when the caller does not override the subject.
const DefaultSubject = "Follow-Up from Our Recent Meeting"

// GenerateEmailRequest regenerates an email body from an existing
// transcript, e.g. after editing the recipient name.
type GenerateEmailRequest struct {
	Transcript    string `json:"transcript" binding:"required"`
	RecipientName string `json:"recipient_name,omitempty"`
}

// Validate performs domain-specific validation
func (r *GenerateEmailRequest) Validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errors.NewValidationError("Invalid generate request", map[string]string{
			"transcript": "transcript must not be blank",
		})
	}
	return nil
}

// SendEmailRequest delivers a reviewed draft.
type SendEmailRequest struct {
	RecipientEmail    string `json:"recipient_email" binding:"required,email"`
	RecipientName     string `json:"recipient_name,omitempty"`
	Subject           string `json:"subject,omitempty"`
	Body              string `json:"body" binding:"required"`
	Transcript        string `json:"transcript,omitempty"`
	AudioKey          string `json:"audio_key,omitempty"`
	AudioFilename     string `json:"audio_filename,omitempty"`
	Provider          string `json:"provider,omitempty"`
	IncludeTranscript bool   `json:"include_transcript,omitempty"`
}

// Validate performs domain-specific validation
func (r *SendEmailRequest) Validate() error {
	validationErrors := make(map[string]string)

	if strings.TrimSpace(r.Body) == "" {
		validationErrors["body"] = "email body must not be blank"
	}
	if r.IncludeTranscript && strings.TrimSpace(r.Transcript) == "" {
		validationErrors["transcript"] = "transcript is required when include_transcript is set"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid send request", validationErrors)
	}
	return nil
}

// SubjectOrDefault returns the subject to send with.
func (r *SendEmailRequest) SubjectOrDefault() string {
	if strings.TrimSpace(r.Subject) == "" {
		return DefaultSubject
	}
	return r.Subject
}

// EmailRecordResponse represents one history entry in API responses
type EmailRecordResponse struct {
	ID             int        `json:"id"`
	UUID           string     `json:"uuid"`
	RecipientEmail string     `json:"recipient_email"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	Subject        string     `json:"subject"`
	Body           string     `json:"body"`
	Transcript     string     `json:"transcript,omitempty"`
	AudioFilename  string     `json:"audio_filename,omitempty"`
	Provider       string     `json:"provider,omitempty"`
	Status         string     `json:"status"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	Error          string     `json:"error,omitempty"`
}

// EmailListResponse is the history listing
type EmailListResponse struct {
	Emails []EmailRecordResponse `json:"emails"`
	Total  int                   `json:"total"`
}

// StatsResponse summarizes the history for the control panel
type StatsResponse struct {
	TotalRecords int `json:"total_records"`
	TotalSent    int `json:"total_sent"`
	TotalFailed  int `json:"total_failed"`
	TotalDrafts  int `json:"total_drafts"`
}

// ToEmailRecordResponse converts a model to response DTO
func ToEmailRecordResponse(r *model.EmailRecord) EmailRecordResponse {
	resp := EmailRecordResponse{
		ID:             r.ID,
		UUID:           r.UUID,
		RecipientEmail: r.RecipientEmail,
		RecipientName:  r.RecipientName,
		Subject:        r.Subject,
		Body:           r.Body,
		Transcript:     r.Transcript,
		AudioFilename:  r.AudioFilename,
		Provider:       r.Provider,
		Status:         DetermineStatus(r),
		CreatedAt:      r.CreatedAt,
		Error:          r.ErrorMessage,
	}
	if !r.SentAt.IsZero() {
		sentAt := r.SentAt
		resp.SentAt = &sentAt
	}
	return resp
}

// DetermineStatus determines the record status based on the model
func DetermineStatus(r *model.EmailRecord) string {
	if r.HasError == 1 && r.ErrorMessage != "" {
		return "failed"
	}
	if !r.SentAt.IsZero() {
		return "sent"
	}
	return "draft"
}
