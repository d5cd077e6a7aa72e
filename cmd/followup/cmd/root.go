package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"meeting-followup/cmd/followup/cmd/export"
	"meeting-followup/cmd/followup/cmd/generate"
	"meeting-followup/cmd/followup/cmd/serve"
	"meeting-followup/cmd/followup/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "followup",
	Short: "Turn meeting recordings into client-ready follow-up emails",
	Long: `Turn meeting recordings into client-ready follow-up emails.
- Transcribe recordings with the hosted Whisper API
- Generate a follow-up email draft in the advisor's voice
- Send reviewed drafts over SMTP and sync action items to the shared workbook
- Every generated email is saved to the local history database.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
