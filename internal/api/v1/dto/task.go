package dto

import (
	"strings"

	"meeting-followup/internal/api/errors"
)

// ExtractTasksRequest pulls action items out of an email body
type ExtractTasksRequest struct {
	EmailBody string `json:"email_body" binding:"required"`
}

// Validate performs domain-specific validation
func (r *ExtractTasksRequest) Validate() error {
	if strings.TrimSpace(r.EmailBody) == "" {
		return errors.NewValidationError("Invalid extract request", map[string]string{
			"email_body": "email body must not be blank",
		})
	}
	return nil
}

// TasksResponse lists extracted action items
type TasksResponse struct {
	Tasks []string `json:"tasks"`
	Count int      `json:"count"`
}

// SyncTasksRequest pushes action items into the shared workbook.
// Either an email body to extract from or an explicit task list
// must be provided.
type SyncTasksRequest struct {
	ClientName string   `json:"client_name" binding:"required"`
	EmailBody  string   `json:"email_body,omitempty"`
	Tasks      []string `json:"tasks,omitempty"`
}

// Validate performs domain-specific validation
func (r *SyncTasksRequest) Validate() error {
	validationErrors := make(map[string]string)

	if strings.TrimSpace(r.ClientName) == "" {
		validationErrors["client_name"] = "client name must not be blank"
	}
	if strings.TrimSpace(r.EmailBody) == "" && len(r.Tasks) == 0 {
		validationErrors["tasks"] = "provide either email_body or tasks"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid sync request", validationErrors)
	}
	return nil
}

// SyncTasksResponse reports what was written to the workbook
type SyncTasksResponse struct {
	Synced int      `json:"synced"`
	Tasks  []string `json:"tasks"`
}
