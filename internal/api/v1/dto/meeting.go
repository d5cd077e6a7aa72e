package dto

// DraftResponse carries the result of processing an uploaded recording:
// the transcript plus the generated follow-up email, ready for review.
type DraftResponse struct {
	Transcript       string `json:"transcript"`
	EmailBody        string `json:"email_body"`
	Subject          string `json:"subject"`
	RecipientEmail   string `json:"recipient_email,omitempty"`
	AudioKey         string `json:"audio_key,omitempty"`
	AudioFilename    string `json:"audio_filename,omitempty"`
	Provider         string `json:"provider,omitempty"`
	TranscriptCached bool   `json:"transcript_cached"`
}
