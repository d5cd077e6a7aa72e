package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"meeting-followup/internal/api/server"
	"meeting-followup/internal/app"
)

var host string
var port string

func init() {
	Cmd.Flags().StringVarP(&host, "host", "H", "0.0.0.0", "address to listen on")
	Cmd.Flags().StringVarP(&port, "port", "p", "8080", "port to listen on")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the follow-up API server",
	Long: `Start the follow-up API server

- POST recordings to /api/v1/meetings to get a draft follow-up email
- Review and send drafts through /api/v1/emails
- Sync action items to the shared workbook through /api/v1/tasks
- The /api group is gated by the APP_PASSCODE shared passcode when set`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		container := app.InitializeServiceContainer()

		cfg := server.DefaultConfig()
		cfg.Host = host
		cfg.Port = port

		srv := server.NewServer(cfg, container, logger)
		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v\n", err)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Forced shutdown: %v\n", err)
		}
	},
}
