package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"meeting-followup/internal/app/model"
)

// ToExcel writes the email history to an Excel workbook.
func ToExcel(records []model.EmailRecord, outputFilePath string) error {
	file, err := Workbook(records)
	if err != nil {
		return err
	}
	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Workbook builds the history workbook without saving it, so the API
// can stream it as a download.
func Workbook(records []model.EmailRecord) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Emails")
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Recipient"
	headerRow.AddCell().Value = "Recipient Name"
	headerRow.AddCell().Value = "Subject"
	headerRow.AddCell().Value = "Sent At"
	headerRow.AddCell().Value = "Audio File"
	headerRow.AddCell().Value = "Provider"
	headerRow.AddCell().Value = "Body"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.RecipientEmail
		row.AddCell().Value = r.RecipientName
		row.AddCell().Value = r.Subject
		if !r.SentAt.IsZero() {
			row.AddCell().Value = r.SentAt.Format(time.RFC3339)
		} else {
			row.AddCell().Value = ""
		}
		row.AddCell().Value = r.AudioFilename
		row.AddCell().Value = r.Provider
		row.AddCell().Value = r.Body
		row.AddCell().Value = r.ErrorMessage
	}

	return file, nil
}
