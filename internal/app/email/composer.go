package email

import (
	"fmt"
	"strings"

	"meeting-followup/internal/app/generator"
	"meeting-followup/internal/config"
)

// Composer builds the generation prompt from a meeting transcript and
// the advisor style profile.
type Composer struct {
	profile *config.StyleProfile
}

// NewComposer creates a composer for the given style profile.
func NewComposer(profile *config.StyleProfile) *Composer {
	if profile == nil {
		profile = config.DefaultStyleProfile()
	}
	return &Composer{profile: profile}
}

// Compose renders the prompt for one follow-up email. recipientName may
// be empty; the model is then told to pick the client's name out of the
// transcript, which is what the tool has always done.
func (c *Composer) Compose(transcript, recipientName string) generator.Prompt {
	p := c.profile

	var b strings.Builder

	fmt.Fprintf(&b,
		"You are %s, a %s at %s. Based on the meeting transcript below, generate a professional follow-up email that matches your established tone and format.\n\n",
		p.AdvisorName, p.AdvisorRole, p.Firm)

	if len(p.Traits) > 0 {
		b.WriteString("Your email style characteristics:\n")
		for _, trait := range p.Traits {
			fmt.Fprintf(&b, "- %s\n", trait)
		}
		if len(p.SignOffs) > 0 {
			fmt.Fprintf(&b, "- End with warm sign-off like %q\n", strings.Join(p.SignOffs, `" or "`))
		}
		b.WriteString("\n")
	}

	if len(p.Sections) > 0 {
		b.WriteString("Example structure to follow:\n")
		b.WriteString("- Greeting with recipient name\n")
		b.WriteString("- Brief intro acknowledging the meeting\n")
		for _, section := range p.Sections {
			fmt.Fprintf(&b, "- **%s** section\n", section)
		}
		b.WriteString("- Professional closing\n\n")
	}

	fmt.Fprintf(&b, "Meeting Transcript:\n%s\n\n", transcript)

	b.WriteString("Generate a professional follow-up email that summarizes the key discussion points, action items, and next steps. Make it client-friendly and well-formatted.")

	if len(p.Examples) > 0 {
		b.WriteString(" Below are a few examples of emails I have already sent. Try and replicate this style to your best ability:\n\n")
		for i, example := range p.Examples {
			if i > 0 {
				b.WriteString("\n\nHere's another:\n\n")
			}
			b.WriteString(example)
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n\n")
	}

	if recipientName != "" {
		fmt.Fprintf(&b, "Address the email to %s.", recipientName)
	} else {
		b.WriteString("If you can identify the client's name from the transcript, use it in the greeting. Otherwise, use a general greeting.")
	}

	return generator.Prompt{
		System: p.SystemPrompt,
		User:   b.String(),
	}
}
