package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"meeting-followup/internal/api/errors"
	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/app/email/smtp"
	"meeting-followup/internal/app/export"
	"meeting-followup/internal/app/metrics"
	"meeting-followup/internal/app/model"
	"meeting-followup/internal/app/repository"
	"meeting-followup/internal/app/storage"
)

// EmailDeliverer sends one outgoing message. *smtp.Sender is the
// production implementation.
type EmailDeliverer interface {
	Send(msg smtp.Message) error
}

type emailService struct {
	dao    repository.EmailRecordDAO
	sender EmailDeliverer
	store  storage.AudioStore
	logger *slog.Logger
	now    func() time.Time
}

// NewEmailService creates an email service over the history store and
// SMTP sender.
func NewEmailService(
	dao repository.EmailRecordDAO,
	sender EmailDeliverer,
	store storage.AudioStore,
	logger *slog.Logger,
) EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{
		dao:    dao,
		sender: sender,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *emailService) Send(ctx context.Context, req *dto.SendEmailRequest) (*dto.EmailRecordResponse, error) {
	record := &model.EmailRecord{
		UUID:           uuid.New().String(),
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
		Subject:        req.SubjectOrDefault(),
		Body:           req.Body,
		Transcript:     req.Transcript,
		AudioFilename:  req.AudioFilename,
		Provider:       req.Provider,
		CreatedAt:      s.now(),
	}

	sendErr := s.sender.Send(smtp.Message{
		To:               req.RecipientEmail,
		Subject:          record.Subject,
		Body:             req.Body,
		Transcript:       req.Transcript,
		AttachTranscript: req.IncludeTranscript,
	})

	if sendErr != nil {
		record.HasError = 1
		record.ErrorMessage = sendErr.Error()
		metrics.EmailsSentTotal.WithLabelValues(metrics.OutcomeError).Inc()
	} else {
		record.SentAt = s.now()
		metrics.EmailsSentTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	}

	// Failures are recorded too so the history shows what happened.
	if err := s.dao.Save(record); err != nil {
		s.logger.Error("failed to save email record", "recipient", req.RecipientEmail, "error", err)
		if sendErr == nil {
			return nil, errors.WrapError(err, errors.KindInternal, "Email sent but history update failed")
		}
	}

	if sendErr != nil {
		return nil, errors.WrapError(sendErr, errors.KindServiceUnavailable, "Failed to send email")
	}

	// The recording has served its purpose once the email is out.
	if req.AudioKey != "" {
		if err := s.store.Delete(ctx, req.AudioKey); err != nil {
			s.logger.Warn("failed to remove recording after send", "key", req.AudioKey, "error", err)
		}
	}

	s.logger.Info("follow-up email sent", "recipient", req.RecipientEmail, "record_id", record.ID)

	resp := dto.ToEmailRecordResponse(record)
	return &resp, nil
}

func (s *emailService) List(ctx context.Context) (*dto.EmailListResponse, error) {
	records, err := s.dao.GetAll()
	if err != nil {
		return nil, errors.WrapError(err, errors.KindInternal, "Failed to load email history")
	}

	emails := lo.Map(records, func(r model.EmailRecord, _ int) dto.EmailRecordResponse {
		return dto.ToEmailRecordResponse(&r)
	})

	return &dto.EmailListResponse{Emails: emails, Total: len(emails)}, nil
}

func (s *emailService) Get(ctx context.Context, id int) (*dto.EmailRecordResponse, error) {
	record, err := s.dao.GetByID(id)
	if err != nil {
		return nil, errors.NewNotFoundError("email record")
	}
	resp := dto.ToEmailRecordResponse(record)
	return &resp, nil
}

func (s *emailService) Delete(ctx context.Context, id int) error {
	if err := s.dao.Delete(id); err != nil {
		return errors.NewNotFoundError("email record")
	}
	return nil
}

func (s *emailService) ExportWorkbook(ctx context.Context) (*xlsx.File, error) {
	records, err := s.dao.GetAll()
	if err != nil {
		return nil, errors.WrapError(err, errors.KindInternal, "Failed to load email history")
	}
	wb, err := export.Workbook(records)
	if err != nil {
		return nil, errors.WrapError(err, errors.KindInternal, "Failed to build workbook")
	}
	return wb, nil
}

func (s *emailService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	records, err := s.dao.GetAll()
	if err != nil {
		return nil, errors.WrapError(err, errors.KindInternal, "Failed to load email history")
	}

	stats := &dto.StatsResponse{TotalRecords: len(records)}
	for i := range records {
		switch dto.DetermineStatus(&records[i]) {
		case "sent":
			stats.TotalSent++
		case "failed":
			stats.TotalFailed++
		default:
			stats.TotalDrafts++
		}
	}
	return stats, nil
}
