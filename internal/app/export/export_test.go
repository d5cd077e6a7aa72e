package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-followup/internal/app/model"
)

func testRecords() []model.EmailRecord {
	sentAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	return []model.EmailRecord{
		{
			ID:             2,
			RecipientEmail: "client@example.com",
			RecipientName:  "Sarah Chen",
			Subject:        "Follow-Up from Our Recent Meeting",
			Body:           "Dear Sarah,",
			AudioFilename:  "meeting.mp3",
			Provider:       "openai",
			SentAt:         sentAt,
		},
		{
			ID:           1,
			Subject:      "Follow-Up from Our Recent Meeting",
			Body:         "Draft body",
			HasError:     1,
			ErrorMessage: "smtp send failed",
		},
	}
}

func TestWorkbook(t *testing.T) {
	wb, err := Workbook(testRecords())
	require.NoError(t, err)

	require.Len(t, wb.Sheets, 1)
	sheet := wb.Sheets[0]
	assert.Equal(t, "Emails", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "2", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "client@example.com", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "2025-03-14T10:30:00Z", sheet.Rows[1].Cells[4].Value)
	// Unsent record leaves the sent-at column empty.
	assert.Equal(t, "", sheet.Rows[2].Cells[4].Value)
	assert.Equal(t, "smtp send failed", sheet.Rows[2].Cells[8].Value)
}

func TestToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")

	require.NoError(t, ToExcel(testRecords(), path))

	assert.FileExists(t, path)
}
