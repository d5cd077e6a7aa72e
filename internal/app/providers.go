package app

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"meeting-followup/internal/api/v1/routes"
	"meeting-followup/internal/api/v1/services"
	"meeting-followup/internal/app/api"
	"meeting-followup/internal/app/api/openai"
	"meeting-followup/internal/app/api/openai/whisper"
	"meeting-followup/internal/app/cache"
	"meeting-followup/internal/app/email"
	"meeting-followup/internal/app/email/smtp"
	"meeting-followup/internal/app/generator"
	"meeting-followup/internal/app/msgraph"
	"meeting-followup/internal/app/repository"
	"meeting-followup/internal/app/repository/pg"
	"meeting-followup/internal/app/repository/sqlite"
	"meeting-followup/internal/app/storage"
	"meeting-followup/internal/app/util/files"
	"meeting-followup/internal/config"
)

// provideTranscriber uses the hosted Whisper API, must set environment variable OPENAI_API_KEY
func provideTranscriber() api.Transcriber {
	return whisper.NewRemoteTranscriber(openai.GetClient())
}

// provideGenerator selects the email generator from GENERATOR_PROVIDER
func provideGenerator() generator.EmailGenerator {
	gen, err := generator.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize email generator: %v\n", err)
	}
	return gen
}

func provideComposer() *email.Composer {
	profile, err := config.ResolveStyleProfile()
	if err != nil {
		log.Fatalf("Failed to load style profile: %v\n", err)
	}
	return email.NewComposer(profile)
}

func provideTranscriptCache() cache.TranscriptCache {
	return cache.NewFromEnv()
}

func provideLogger() *slog.Logger {
	return slog.Default()
}

// provideEmailRecordDAO uses PostgreSQL when DATABASE_URL is set and a
// local SQLite file otherwise.
func provideEmailRecordDAO() repository.EmailRecordDAO {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		dao, err := pg.NewPostgresDB(connStr)
		if err != nil {
			log.Fatalf("Failed to open PostgreSQL history store: %v\n", err)
		}
		return dao
	}

	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	dbPath := filepath.Join(projectRoot, "data/followup.db")
	dao, err := sqlite.NewSQLiteDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open SQLite history store: %v\n", err)
	}
	return dao
}

func provideAudioStore() storage.AudioStore {
	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	store, err := storage.NewFromEnv(filepath.Join(projectRoot, "data/audio_files"))
	if err != nil {
		log.Fatalf("Failed to initialize audio store: %v\n", err)
	}
	return store
}

func provideSender() *smtp.Sender {
	return smtp.NewSender(config.GetSMTPConfig())
}

// provideExcelClient returns nil when the Graph credentials are not
// configured; the task service treats that as workbook-unavailable.
func provideExcelClient() *msgraph.ExcelClient {
	cfg := config.GetGraphConfig()
	if !cfg.Configured() {
		return nil
	}
	return msgraph.NewExcelClient(cfg, nil)
}

func provideServiceContainer(
	meetingService services.MeetingService,
	emailService services.EmailService,
	taskService services.TaskService,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		MeetingService: meetingService,
		EmailService:   emailService,
		TaskService:    taskService,
	}
}
