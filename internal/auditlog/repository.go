package auditlog

import (
	"database/sql"
	"fmt"
	"time"

	"orbitdeck/internal/database"
)

// Repository defines the persistence interface for diagnostics run records.
type Repository interface {
	Save(record *RunRecord) error
	List(limit int) ([]RunRecord, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the audit repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS diagnostics_runs (
            id           INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp    TEXT    NOT NULL,
            model        TEXT    NOT NULL DEFAULT '',
            sample_count INTEGER NOT NULL DEFAULT 0,
            outcome      TEXT    NOT NULL DEFAULT '',
            status       TEXT    NOT NULL DEFAULT '',
            summary      TEXT    NOT NULL DEFAULT '',
            detail       TEXT    NOT NULL DEFAULT '',
            duration_ms  INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_diagnostics_runs_timestamp ON diagnostics_runs(timestamp);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("auditlog: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new run record.
func (r *SQLiteRepository) Save(record *RunRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO diagnostics_runs (timestamp, model, sample_count, outcome, status, summary, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339Nano), record.Model, record.SampleCount,
		record.Outcome, record.Status, record.Summary, record.Detail, record.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("auditlog: failed to get last insert ID: %w", err)
	}
	record.ID = id
	return nil
}

// List returns the most recent n run records, newest first.
func (r *SQLiteRepository) List(limit int) ([]RunRecord, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, model, sample_count, outcome, status, summary, detail, duration_ms
        FROM diagnostics_runs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes records older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	result, err := r.db.Exec(`DELETE FROM diagnostics_runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("auditlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]RunRecord, error) {
	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		var timestampStr string
		err := rows.Scan(
			&record.ID, &timestampStr, &record.Model, &record.SampleCount,
			&record.Outcome, &record.Status, &record.Summary, &record.Detail, &record.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("auditlog: scan failed: %w", err)
		}
		record.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		records = append(records, record)
	}
	return records, rows.Err()
}
