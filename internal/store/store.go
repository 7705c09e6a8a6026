// Package store persists completed assessment records for audit listing.
// Two backends exist: SQLite (default, file-based) and Postgres.
package store

import (
	"context"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// RunFilter specifies criteria for listing assessment runs.
type RunFilter struct {
	Classification model.Classification `json:"classification,omitempty"`
	Limit          int                  `json:"limit,omitempty"`
	Offset         int                  `json:"offset,omitempty"`
}

// Store defines the persistence interface for completed assessments.
// Records are write-once; there is no update path.
type Store interface {
	SaveRecord(ctx context.Context, rec model.ExportRecord) (*model.AssessmentRun, error)
	GetRun(ctx context.Context, id string) (*model.AssessmentRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.AssessmentRun, error)

	Migrate(ctx context.Context) error
	Close() error
}
