package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id             TEXT PRIMARY KEY,
	model_name     TEXT NOT NULL,
	model_owner    TEXT NOT NULL,
	classification TEXT NOT NULL,
	systemic_risk  TEXT NOT NULL,
	record         TEXT NOT NULL,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_assessments_classification ON assessments(classification);
CREATE INDEX IF NOT EXISTS idx_assessments_model_name ON assessments(model_name);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec model.ExportRecord) (*model.AssessmentRun, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, model_name, model_owner, classification, systemic_risk, record, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, rec.ModelName, rec.ModelOwner, string(rec.Classification), string(rec.SystemicRisk), string(recordJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert assessment")
	}

	return &model.AssessmentRun{
		ID:        id,
		Record:    rec,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*model.AssessmentRun, error) {
	var (
		run        model.AssessmentRun
		recordJSON string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, record, created_at FROM assessments WHERE id = ?`, id,
	).Scan(&run.ID, &recordJSON, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get assessment %s", id)
	}

	if err := json.Unmarshal([]byte(recordJSON), &run.Record); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal assessment %s", id)
	}
	return &run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.AssessmentRun, error) {
	query := `SELECT id, record, created_at FROM assessments`
	var args []any

	if filter.Classification != "" {
		query += ` WHERE classification = ?`
		args = append(args, string(filter.Classification))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list assessments")
	}
	defer rows.Close()

	var runs []model.AssessmentRun
	for rows.Next() {
		var (
			run        model.AssessmentRun
			recordJSON string
		)
		if err := rows.Scan(&run.ID, &recordJSON, &run.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan assessment")
		}
		if err := json.Unmarshal([]byte(recordJSON), &run.Record); err != nil {
			return nil, eris.Wrapf(err, "sqlite: unmarshal assessment %s", run.ID)
		}
		runs = append(runs, run)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: iterate assessments")
}
