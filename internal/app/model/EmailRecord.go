package model

import "time"

// EmailRecord is one generated follow-up email, kept for history and export.
type EmailRecord struct {
	ID             int
	UUID           string
	RecipientEmail string
	RecipientName  string
	Subject        string
	Body           string
	Transcript     string
	AudioFilename  string
	Provider       string
	SentAt         time.Time
	CreatedAt      time.Time
	HasError       int
	ErrorMessage   string
}

// Sent reports whether the record represents a successfully delivered email.
func (r *EmailRecord) Sent() bool {
	return r.HasError == 0 && !r.SentAt.IsZero()
}
