package repository

import "meeting-followup/internal/app/model"

// EmailRecordDAO persists the follow-up email history.
type EmailRecordDAO interface {
	Close() error

	// Save inserts a record and fills in its generated ID.
	Save(record *model.EmailRecord) error

	// GetByID returns one record or an error when it does not exist.
	GetByID(id int) (*model.EmailRecord, error)

	// GetAll returns the full history, newest first.
	GetAll() ([]model.EmailRecord, error)

	// CountSent returns how many emails were delivered without error.
	CountSent() (int, error)

	// Delete removes a record by ID.
	Delete(id int) error
}
