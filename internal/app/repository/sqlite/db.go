package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"meeting-followup/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS email_records (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid            TEXT NOT NULL UNIQUE,
    recipient_email TEXT NOT NULL,
    recipient_name  TEXT NOT NULL DEFAULT '',
    subject         TEXT NOT NULL,
    body            TEXT NOT NULL,
    transcript      TEXT NOT NULL DEFAULT '',
    audio_filename  TEXT NOT NULL DEFAULT '',
    provider        TEXT NOT NULL DEFAULT '',
    sent_at         TIMESTAMP,
    created_at      TIMESTAMP NOT NULL,
    has_error       INTEGER NOT NULL DEFAULT 0,
    error_message   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_email_records_created_at ON email_records(created_at);
`

// SQLiteDB implements repository.EmailRecordDAO on a local database file.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and initializes) the history database.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create email_records table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Save(record *model.EmailRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	insertSQL := `INSERT INTO email_records
		(uuid, recipient_email, recipient_name, subject, body, transcript, audio_filename, provider, sent_at, created_at, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := sdb.db.Exec(insertSQL,
		record.UUID, record.RecipientEmail, record.RecipientName, record.Subject,
		record.Body, record.Transcript, record.AudioFilename, record.Provider,
		nullableTime(record.SentAt), record.CreatedAt, record.HasError, record.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert email record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	record.ID = int(id)
	return nil
}

func (sdb *SQLiteDB) GetByID(id int) (*model.EmailRecord, error) {
	query := selectColumns + ` FROM email_records WHERE id = ?`
	return scanRecord(sdb.db.QueryRow(query, id))
}

func (sdb *SQLiteDB) GetAll() ([]model.EmailRecord, error) {
	query := selectColumns + ` FROM email_records ORDER BY created_at DESC, id DESC`
	rows, err := sdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.EmailRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (sdb *SQLiteDB) CountSent() (int, error) {
	var count int
	err := sdb.db.QueryRow(`SELECT COUNT(*) FROM email_records WHERE has_error = 0 AND sent_at IS NOT NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}

func (sdb *SQLiteDB) Delete(id int) error {
	result, err := sdb.db.Exec(`DELETE FROM email_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const selectColumns = `SELECT id, uuid, recipient_email, recipient_name, subject, body, transcript, audio_filename, provider, sent_at, created_at, has_error, error_message`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*model.EmailRecord, error) {
	var r model.EmailRecord
	var sentAt sql.NullTime
	err := row.Scan(&r.ID, &r.UUID, &r.RecipientEmail, &r.RecipientName, &r.Subject,
		&r.Body, &r.Transcript, &r.AudioFilename, &r.Provider,
		&sentAt, &r.CreatedAt, &r.HasError, &r.ErrorMessage)
	if err != nil {
		return nil, err
	}
	if sentAt.Valid {
		r.SentAt = sentAt.Time
	}
	return &r, nil
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
