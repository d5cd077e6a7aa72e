package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"meeting-followup/internal/api/errors"
	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/app/email"
	"meeting-followup/internal/app/followup"
	"meeting-followup/internal/app/generator"
	"meeting-followup/internal/app/storage"
	"meeting-followup/internal/app/util/files"
)

type meetingService struct {
	pipeline *followup.Pipeline
	gen      generator.EmailGenerator
	composer *email.Composer
	store    storage.AudioStore
	logger   *slog.Logger
}

// NewMeetingService creates a meeting service backed by the draft pipeline.
func NewMeetingService(
	pipeline *followup.Pipeline,
	gen generator.EmailGenerator,
	composer *email.Composer,
	store storage.AudioStore,
	logger *slog.Logger,
) MeetingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &meetingService{
		pipeline: pipeline,
		gen:      gen,
		composer: composer,
		store:    store,
		logger:   logger,
	}
}

func (s *meetingService) CreateDraft(ctx context.Context, audio io.Reader, filename string, recipientName string) (*dto.DraftResponse, error) {
	if !files.IsSupportedAudio(filename) {
		return nil, errors.NewValidationError("Unsupported audio format", map[string]string{
			"file": "supported extensions are " + files.SupportedExtensions() + ", got " + filepath.Ext(filename),
		})
	}

	stored, err := s.store.Save(ctx, audio, filename)
	if err != nil {
		return nil, errors.WrapError(err, errors.KindInternal, "Failed to store recording")
	}

	draft, err := s.pipeline.Run(ctx, stored.LocalPath, followup.Options{RecipientName: recipientName})
	if err != nil {
		// The recording stays in storage so the upload does not have
		// to be repeated after a transient provider failure.
		s.logger.Error("draft pipeline failed", "audio", stored.Name, "error", err)
		return nil, errors.WrapError(err, errors.KindServiceUnavailable, "Failed to process recording")
	}

	return &dto.DraftResponse{
		Transcript:       draft.Transcript,
		EmailBody:        draft.EmailBody,
		Subject:          dto.DefaultSubject,
		AudioKey:         stored.Key,
		AudioFilename:    stored.Name,
		Provider:         draft.Provider,
		TranscriptCached: draft.FromCache,
	}, nil
}

func (s *meetingService) Regenerate(ctx context.Context, req *dto.GenerateEmailRequest) (*dto.DraftResponse, error) {
	prompt := s.composer.Compose(req.Transcript, req.RecipientName)
	body, err := s.gen.GenerateEmail(ctx, prompt)
	if err != nil {
		return nil, errors.WrapError(err, errors.KindServiceUnavailable, "Failed to generate email")
	}

	return &dto.DraftResponse{
		Transcript: req.Transcript,
		EmailBody:  body,
		Subject:    dto.DefaultSubject,
		Provider:   s.gen.GetProviderInfo().Name,
	}, nil
}
