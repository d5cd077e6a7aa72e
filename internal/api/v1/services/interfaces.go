package services

import (
	"context"
	"io"

	"github.com/tealeg/xlsx"

	"meeting-followup/internal/api/v1/dto"
)

// MeetingService turns uploaded recordings into reviewed-ready drafts
type MeetingService interface {
	// CreateDraft stores the recording, transcribes it and generates
	// a follow-up email draft.
	CreateDraft(ctx context.Context, audio io.Reader, filename string, recipientName string) (*dto.DraftResponse, error)

	// Regenerate produces a fresh email body from an existing transcript.
	Regenerate(ctx context.Context, req *dto.GenerateEmailRequest) (*dto.DraftResponse, error)
}

// EmailService handles delivery and history
type EmailService interface {
	// Send delivers a reviewed draft and records the outcome.
	Send(ctx context.Context, req *dto.SendEmailRequest) (*dto.EmailRecordResponse, error)

	// List returns all history entries, newest first.
	List(ctx context.Context) (*dto.EmailListResponse, error)

	// Get returns a single history entry.
	Get(ctx context.Context, id int) (*dto.EmailRecordResponse, error)

	// Delete removes a history entry.
	Delete(ctx context.Context, id int) error

	// ExportWorkbook renders the history as a spreadsheet.
	ExportWorkbook(ctx context.Context) (*xlsx.File, error)

	// Stats summarizes the history.
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

// TaskService extracts action items and syncs them to the shared workbook
type TaskService interface {
	// Extract pulls action items out of an email body.
	Extract(ctx context.Context, emailBody string) []string

	// Sync writes action items for a client into the workbook.
	Sync(ctx context.Context, req *dto.SyncTasksRequest) (*dto.SyncTasksResponse, error)
}
