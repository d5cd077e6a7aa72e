package pg

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-followup/internal/app/model"
)

func newMockDB(t *testing.T) (*PostgresDB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresDBFromConn(db), mock
}

func recordColumns() []string {
	return []string{
		"id", "uuid", "recipient_email", "recipient_name", "subject", "body",
		"transcript", "audio_filename", "provider", "sent_at", "created_at",
		"has_error", "error_message",
	}
}

func TestPostgresDB_Save(t *testing.T) {
	dao, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO email_records`).
		WithArgs("uuid-1", "client@example.com", "Sarah Chen", "Follow-Up from Our Recent Meeting",
			"Dear Sarah,", "transcript", "meeting.mp3", "openai",
			now, now, 0, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	record := &model.EmailRecord{
		UUID:           "uuid-1",
		RecipientEmail: "client@example.com",
		RecipientName:  "Sarah Chen",
		Subject:        "Follow-Up from Our Recent Meeting",
		Body:           "Dear Sarah,",
		Transcript:     "transcript",
		AudioFilename:  "meeting.mp3",
		Provider:       "openai",
		SentAt:         now,
		CreatedAt:      now,
	}
	require.NoError(t, dao.Save(record))
	assert.Equal(t, 42, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_Save_NullSentAt(t *testing.T) {
	dao, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO email_records`).
		WithArgs("uuid-2", "", "", "Follow-Up from Our Recent Meeting", "Draft body",
			"", "", "", nil, now, 0, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	record := &model.EmailRecord{
		UUID:      "uuid-2",
		Subject:   "Follow-Up from Our Recent Meeting",
		Body:      "Draft body",
		CreatedAt: now,
	}
	require.NoError(t, dao.Save(record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_GetByID(t *testing.T) {
	dao, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM email_records WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(7, "uuid-7", "client@example.com", "Sarah", "Subject", "Body",
				"", "", "openai", now, now, 0, ""))

	record, err := dao.GetByID(7)
	require.NoError(t, err)
	assert.Equal(t, 7, record.ID)
	assert.Equal(t, "client@example.com", record.RecipientEmail)
	assert.True(t, record.Sent())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_GetByID_NotFound(t *testing.T) {
	dao, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM email_records WHERE id = \$1`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := dao.GetByID(99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgresDB_GetAll(t *testing.T) {
	dao, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM email_records ORDER BY created_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(2, "uuid-2", "b@example.com", "", "Subject", "Body", "", "", "", now, now, 0, "").
			AddRow(1, "uuid-1", "a@example.com", "", "Subject", "Body", "", "", "", nil, now, 1, "smtp send failed"))

	records, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].ID)
	assert.True(t, records[1].SentAt.IsZero())
	assert.Equal(t, 1, records[1].HasError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_CountSent(t *testing.T) {
	dao, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM email_records`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := dao.CountSent()
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestPostgresDB_Delete(t *testing.T) {
	dao, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM email_records WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, dao.Delete(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_Delete_NotFound(t *testing.T) {
	dao, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM email_records WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, dao.Delete(99), sql.ErrNoRows)
}
