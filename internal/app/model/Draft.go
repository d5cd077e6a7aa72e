package model

// Draft is the output of one pipeline run: the raw transcript and the
// generated follow-up email body. Nothing is persisted until the email
// is sent or the CLI records it explicitly.
type Draft struct {
	Transcript    string
	EmailBody     string
	AudioFilename string
	AudioKey      string
	Provider      string
	FromCache     bool
}
