package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"meeting-followup/internal/app"
	"meeting-followup/internal/app/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the email history to excel",
	Long: `Export the email history to excel

- Export all history entries to excel, currently does not support a limited number`,
	Run: func(cmd *cobra.Command, args []string) {
		dao := app.InitializeEmailRecordDAO()
		defer dao.Close()

		records, err := dao.GetAll()
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(records, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
