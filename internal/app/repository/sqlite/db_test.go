package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-followup/internal/app/model"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sentRecord(recipient string, sentAt time.Time) *model.EmailRecord {
	return &model.EmailRecord{
		UUID:           uuid.New().String(),
		RecipientEmail: recipient,
		RecipientName:  "Sarah Chen",
		Subject:        "Follow-Up from Our Recent Meeting",
		Body:           "Dear Sarah,",
		Transcript:     "We discussed the portfolio.",
		AudioFilename:  "meeting.mp3",
		Provider:       "openai",
		SentAt:         sentAt,
		CreatedAt:      sentAt,
	}
}

func TestSQLiteDB_SaveAndGetByID(t *testing.T) {
	db := newTestDB(t)

	record := sentRecord("client@example.com", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, db.Save(record))
	assert.NotZero(t, record.ID)

	loaded, err := db.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.UUID, loaded.UUID)
	assert.Equal(t, "client@example.com", loaded.RecipientEmail)
	assert.Equal(t, "Dear Sarah,", loaded.Body)
	assert.True(t, loaded.Sent())
	assert.Equal(t, record.SentAt.Unix(), loaded.SentAt.Unix())
}

func TestSQLiteDB_SaveDraftWithoutSentAt(t *testing.T) {
	db := newTestDB(t)

	record := &model.EmailRecord{
		UUID:      uuid.New().String(),
		Subject:   "Follow-Up from Our Recent Meeting",
		Body:      "Draft body",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Save(record))

	loaded, err := db.GetByID(record.ID)
	require.NoError(t, err)
	assert.True(t, loaded.SentAt.IsZero())
	assert.False(t, loaded.Sent())
}

func TestSQLiteDB_GetAllNewestFirst(t *testing.T) {
	db := newTestDB(t)

	older := sentRecord("first@example.com", time.Now().Add(-time.Hour))
	newer := sentRecord("second@example.com", time.Now())
	require.NoError(t, db.Save(older))
	require.NoError(t, db.Save(newer))

	records, err := db.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second@example.com", records[0].RecipientEmail)
	assert.Equal(t, "first@example.com", records[1].RecipientEmail)
}

func TestSQLiteDB_CountSent(t *testing.T) {
	db := newTestDB(t)

	sent := sentRecord("ok@example.com", time.Now())
	require.NoError(t, db.Save(sent))

	failed := sentRecord("fail@example.com", time.Now())
	failed.UUID = uuid.New().String()
	failed.SentAt = time.Time{}
	failed.HasError = 1
	failed.ErrorMessage = "smtp send failed"
	require.NoError(t, db.Save(failed))

	draft := sentRecord("draft@example.com", time.Now())
	draft.UUID = uuid.New().String()
	draft.SentAt = time.Time{}
	require.NoError(t, db.Save(draft))

	count, err := db.CountSent()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteDB_Delete(t *testing.T) {
	db := newTestDB(t)

	record := sentRecord("client@example.com", time.Now())
	require.NoError(t, db.Save(record))

	require.NoError(t, db.Delete(record.ID))

	_, err := db.GetByID(record.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, db.Delete(record.ID), sql.ErrNoRows)
}
