package generate

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"meeting-followup/internal/app"
	"meeting-followup/internal/app/followup"
)

var input string
var outputDir string
var recipientName string

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "",
		"input is a recording file or a directory of recordings, example: ./recordings")
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "",
		"outputDir is where draft emails and transcripts are written")
	Cmd.Flags().StringVarP(&recipientName, "recipientName", "r", "",
		"recipient name to address the emails to; when empty the name is inferred from each transcript")

	Cmd.MarkFlagRequired("input")
	Cmd.MarkFlagRequired("outputDir")
}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate draft follow-up emails from a recording or a directory of recordings",
	Long: `Generate draft follow-up emails from a recording or a directory of recordings

- Transcribe each recording and generate a follow-up email draft
- Write <name>_email.txt and <name>_transcript.txt into the output directory
- Drafts are saved to the history database for later review and sending`,
	Run: func(cmd *cobra.Command, args []string) {
		info, err := os.Stat(input)
		if err != nil {
			log.Fatalf("Cannot read input %s: %v\n", input, err)
		}

		progress := followup.NewProgressManager(followup.ProgressConfig{
			Enabled: info.IsDir(),
			Writer:  os.Stderr,
		})

		runner := app.InitializeBatchRunner(progress)
		opts := followup.Options{RecipientName: recipientName}

		if !info.IsDir() {
			if err := runner.RunFile(context.Background(), input, outputDir, opts); err != nil {
				log.Fatalf("Generation failed: %v\n", err)
			}
			fmt.Printf("draft written to %v\n", outputDir)
			return
		}

		result, err := runner.Run(context.Background(), input, outputDir, opts)
		if err != nil {
			log.Fatalf("Batch generation failed: %v\n", err)
		}

		fmt.Printf("generation finished: %d drafts written, %d failed, output: %v\n",
			result.Processed, result.Failed, outputDir)
	},
}
