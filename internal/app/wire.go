//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"meeting-followup/internal/api/v1/routes"
	"meeting-followup/internal/api/v1/services"
	"meeting-followup/internal/app/email/smtp"
	"meeting-followup/internal/app/followup"
	"meeting-followup/internal/app/repository"
)

func InitializePipeline() *followup.Pipeline {
	wire.Build(
		followup.NewPipeline,
		provideTranscriber,
		provideGenerator,
		provideComposer,
		provideTranscriptCache,
		provideLogger,
	)
	return &followup.Pipeline{}
}

func InitializeBatchRunner(progress *followup.ProgressManager) *followup.BatchRunner {
	wire.Build(
		followup.NewBatchRunner,
		followup.NewPipeline,
		provideTranscriber,
		provideGenerator,
		provideComposer,
		provideTranscriptCache,
		provideEmailRecordDAO,
		provideLogger,
	)
	return &followup.BatchRunner{}
}

func InitializeEmailRecordDAO() repository.EmailRecordDAO {
	wire.Build(provideEmailRecordDAO)
	return nil
}

func InitializeServiceContainer() *routes.ServiceContainer {
	wire.Build(
		provideServiceContainer,
		services.NewMeetingService,
		services.NewEmailService,
		services.NewTaskService,
		followup.NewPipeline,
		provideTranscriber,
		provideGenerator,
		provideComposer,
		provideTranscriptCache,
		provideEmailRecordDAO,
		provideAudioStore,
		provideSender,
		wire.Bind(new(services.EmailDeliverer), new(*smtp.Sender)),
		provideExcelClient,
		provideLogger,
	)
	return &routes.ServiceContainer{}
}
