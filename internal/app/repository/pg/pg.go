package pg

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"meeting-followup/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS email_records (
    id              SERIAL PRIMARY KEY,
    uuid            TEXT NOT NULL UNIQUE,
    recipient_email TEXT NOT NULL,
    recipient_name  TEXT NOT NULL DEFAULT '',
    subject         TEXT NOT NULL,
    body            TEXT NOT NULL,
    transcript      TEXT NOT NULL DEFAULT '',
    audio_filename  TEXT NOT NULL DEFAULT '',
    provider        TEXT NOT NULL DEFAULT '',
    sent_at         TIMESTAMPTZ,
    created_at      TIMESTAMPTZ NOT NULL,
    has_error       INTEGER NOT NULL DEFAULT 0,
    error_message   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_email_records_created_at ON email_records(created_at);
`

// PostgresDB implements repository.EmailRecordDAO for shared deployments
// where several advisors write to the same history.
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects with a lib/pq connection string (or DATABASE_URL).
func NewPostgresDB(connStr string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create email_records table: %w", err)
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBFromConn wraps an existing connection. Used by tests.
func NewPostgresDBFromConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Save(record *model.EmailRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	insertSQL := `INSERT INTO email_records
		(uuid, recipient_email, recipient_name, subject, body, transcript, audio_filename, provider, sent_at, created_at, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := pdb.db.QueryRow(insertSQL,
		record.UUID, record.RecipientEmail, record.RecipientName, record.Subject,
		record.Body, record.Transcript, record.AudioFilename, record.Provider,
		nullableTime(record.SentAt), record.CreatedAt, record.HasError, record.ErrorMessage,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to insert email record: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetByID(id int) (*model.EmailRecord, error) {
	query := selectColumns + ` FROM email_records WHERE id = $1`
	return scanRecord(pdb.db.QueryRow(query, id))
}

func (pdb *PostgresDB) GetAll() ([]model.EmailRecord, error) {
	query := selectColumns + ` FROM email_records ORDER BY created_at DESC, id DESC`
	rows, err := pdb.db.Query(query)
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

func (pdb *PostgresDB) CountSent() (int, error) {
	var count int
	err := pdb.db.QueryRow(`SELECT COUNT(*) FROM email_records WHERE has_error = 0 AND sent_at IS NOT NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}

func (pdb *PostgresDB) Delete(id int) error {
	result, err := pdb.db.Exec(`DELETE FROM email_records WHERE id = $1`, id)
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
