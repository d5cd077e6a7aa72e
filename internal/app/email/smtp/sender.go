package smtp

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"meeting-followup/internal/config"
)

// TranscriptAttachmentName is the filename clients see when the meeting
// transcript is attached to the outgoing email.
const TranscriptAttachmentName = "meeting_transcript.txt"

// Sender delivers follow-up emails over SMTP with STARTTLS and PLAIN
// auth, the same path the tool has used since its first version.
type Sender struct {
	cfg  *config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSender creates an SMTP sender from config.
func NewSender(cfg *config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg, send: smtp.SendMail}
}

// Message is one outgoing email. Transcript is attached only when
// non-empty and AttachTranscript is set.
type Message struct {
	To               string
	Subject          string
	Body             string
	Transcript       string
	AttachTranscript bool
}

// Send builds the MIME message and hands it to the SMTP server.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Configured() {
		return fmt.Errorf("email credentials not configured: set SENDER_EMAIL and SENDER_PASSWORD")
	}
	if msg.To == "" {
		return fmt.Errorf("recipient address is required")
	}

	payload, err := buildMIME(s.cfg.Sender, msg)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	addr := s.cfg.Server + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Sender, s.cfg.Password, s.cfg.Server)

	if err := s.send(addr, auth, s.cfg.Sender, []string{msg.To}, payload); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}

// buildMIME renders the multipart/mixed message: a plain-text body part
// and, optionally, the transcript as a text attachment.
func buildMIME(from string, msg Message) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", `text/plain; charset="utf-8"`)
	bodyPart, err := writer.CreatePart(bodyHeader)
	if err != nil {
		return nil, err
	}
	if _, err := bodyPart.Write([]byte(msg.Body)); err != nil {
		return nil, err
	}

	if msg.AttachTranscript && msg.Transcript != "" {
		attHeader := textproto.MIMEHeader{}
		attHeader.Set("Content-Type", `text/plain; charset="utf-8"`)
		attHeader.Set("Content-Transfer-Encoding", "base64")
		attHeader.Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename=%q`, TranscriptAttachmentName))

		attPart, err := writer.CreatePart(attHeader)
		if err != nil {
			return nil, err
		}
		encoded := base64.StdEncoding.EncodeToString([]byte(msg.Transcript))
		if _, err := attPart.Write([]byte(encoded)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
