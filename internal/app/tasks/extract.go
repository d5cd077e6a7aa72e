package tasks

import (
	"strings"

	"github.com/samber/lo"
)

// Markers that introduce an action item line.
var bulletMarkers = []string{
	"○", "•", "-", "*",
	"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "9.",
}

// Sign-off lines that terminate the action-item section.
var signOffPrefixes = []string{
	"warm regards", "all the best", "sincerely", "should you have",
}

// Extract pulls action items out of a generated email body. It scans the
// lines after a "Next Steps:" or "Action Items:" heading, collects
// bullet or numbered entries, and stops at the sign-off. Entries of five
// characters or fewer are list-formatting noise and are discarded.
func Extract(emailBody string) []string {
	var extracted []string
	inNextSteps := false

	for _, line := range strings.Split(emailBody, "\n") {
		clean := strings.TrimSpace(line)
		lower := strings.ToLower(clean)

		if strings.Contains(lower, "next steps:") || strings.Contains(lower, "action items:") {
			inNextSteps = true
			continue
		}

		if !inNextSteps || clean == "" {
			continue
		}

		if lo.SomeBy(signOffPrefixes, func(p string) bool { return strings.HasPrefix(lower, p) }) {
			break
		}

		if len(clean) <= 3 {
			continue
		}
		if !lo.SomeBy(bulletMarkers, func(m string) bool { return strings.HasPrefix(clean, m) }) {
			continue
		}

		task := stripBullet(clean)
		if len(task) > 5 {
			extracted = append(extracted, task)
		}
	}

	return extracted
}

// stripBullet removes the leading marker and its trailing space. A line
// that is only a marker ("- ") never reaches here, the length check
// above drops it.
func stripBullet(line string) string {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker+" ") {
			return strings.TrimSpace(line[len(marker)+1:])
		}
	}
	return line
}
