package ports

import (
	"context"

	"goeed/domain/core"
	"goeed/domain/run"
)

// RunRepository defines the interface for evaluation run persistence
type RunRepository interface {
	// SaveRun stores a finished evaluation, including per-sentence scores when present
	SaveRun(ctx context.Context, evaluation *run.Evaluation) error

	// GetRun retrieves an evaluation by ID, including its sentence scores
	GetRun(ctx context.Context, id core.RunID) (*run.Evaluation, error)

	// ListRuns returns the most recent evaluations, newest first
	ListRuns(ctx context.Context, limit int) ([]*run.Evaluation, error)
}
