package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/app/email/smtp"
	"meeting-followup/internal/app/storage"
	"meeting-followup/internal/app/testutil"
)

type fakeDeliverer struct {
	err  error
	sent []smtp.Message
}

func (f *fakeDeliverer) Send(msg smtp.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeAudioStore struct {
	deleted []string
	delErr  error
}

func (f *fakeAudioStore) Save(ctx context.Context, r io.Reader, originalName string) (*storage.StoredAudio, error) {
	return &storage.StoredAudio{Key: originalName, Name: originalName}, nil
}

func (f *fakeAudioStore) Delete(ctx context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func newTestEmailService(deliverer *fakeDeliverer, dao *testutil.MockEmailRecordDAO, store *fakeAudioStore) *emailService {
	svc := NewEmailService(dao, deliverer, store, nil).(*emailService)
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestEmailService_Send(t *testing.T) {
	deliverer := &fakeDeliverer{}
	dao := testutil.NewMockEmailRecordDAO()
	store := &fakeAudioStore{}
	svc := newTestEmailService(deliverer, dao, store)

	resp, err := svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail:    "client@example.com",
		RecipientName:     "Sarah Chen",
		Body:              "Dear Sarah,",
		Transcript:        "We discussed the portfolio.",
		AudioKey:          "20250314_103000_meeting.mp3",
		IncludeTranscript: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "sent", resp.Status)
	assert.Equal(t, dto.DefaultSubject, resp.Subject)
	require.NotNil(t, resp.SentAt)

	// The delivered message carried the transcript attachment.
	require.Len(t, deliverer.sent, 1)
	assert.True(t, deliverer.sent[0].AttachTranscript)
	assert.Equal(t, "client@example.com", deliverer.sent[0].To)

	// The recording is removed once the email is out.
	assert.Equal(t, []string{"20250314_103000_meeting.mp3"}, store.deleted)

	// The history has the record.
	records, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Sent())
}

func TestEmailService_Send_CustomSubject(t *testing.T) {
	deliverer := &fakeDeliverer{}
	svc := newTestEmailService(deliverer, testutil.NewMockEmailRecordDAO(), &fakeAudioStore{})

	resp, err := svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail: "client@example.com",
		Subject:        "Q2 Review Recap",
		Body:           "Dear Tom,",
	})
	require.NoError(t, err)
	assert.Equal(t, "Q2 Review Recap", resp.Subject)
	assert.Equal(t, "Q2 Review Recap", deliverer.sent[0].Subject)
}

func TestEmailService_Send_FailureIsRecorded(t *testing.T) {
	deliverer := &fakeDeliverer{err: errors.New("smtp send failed: 535")}
	dao := testutil.NewMockEmailRecordDAO()
	store := &fakeAudioStore{}
	svc := newTestEmailService(deliverer, dao, store)

	_, err := svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail: "client@example.com",
		Body:           "Dear Sarah,",
		AudioKey:       "meeting.mp3",
	})
	require.Error(t, err)

	// The failure lands in the history and the recording survives for
	// a retry.
	records, _ := dao.GetAll()
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].HasError)
	assert.Contains(t, records[0].ErrorMessage, "535")
	assert.Empty(t, store.deleted)
}

func TestEmailService_Stats(t *testing.T) {
	deliverer := &fakeDeliverer{}
	dao := testutil.NewMockEmailRecordDAO()
	svc := newTestEmailService(deliverer, dao, &fakeAudioStore{})

	_, err := svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail: "sent@example.com",
		Body:           "Dear Sarah,",
	})
	require.NoError(t, err)

	deliverer.err = errors.New("smtp down")
	_, err = svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail: "failed@example.com",
		Body:           "Dear Tom,",
	})
	require.Error(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 1, stats.TotalSent)
	assert.Equal(t, 1, stats.TotalFailed)
	assert.Equal(t, 0, stats.TotalDrafts)
}

func TestEmailService_GetAndDelete(t *testing.T) {
	deliverer := &fakeDeliverer{}
	dao := testutil.NewMockEmailRecordDAO()
	svc := newTestEmailService(deliverer, dao, &fakeAudioStore{})

	sent, err := svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail: "client@example.com",
		Body:           "Dear Sarah,",
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), sent.ID)
	require.NoError(t, err)
	assert.Equal(t, sent.ID, got.ID)

	require.NoError(t, svc.Delete(context.Background(), sent.ID))

	_, err = svc.Get(context.Background(), sent.ID)
	assert.Error(t, err)
}

func TestEmailService_ExportWorkbook(t *testing.T) {
	deliverer := &fakeDeliverer{}
	dao := testutil.NewMockEmailRecordDAO()
	svc := newTestEmailService(deliverer, dao, &fakeAudioStore{})

	_, err := svc.Send(context.Background(), &dto.SendEmailRequest{
		RecipientEmail: "client@example.com",
		Body:           "Dear Sarah,",
	})
	require.NoError(t, err)

	wb, err := svc.ExportWorkbook(context.Background())
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	// Header row plus one record.
	assert.Equal(t, 2, len(wb.Sheets[0].Rows))
}
