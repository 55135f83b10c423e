package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"goeed/domain/core"
	"goeed/domain/eed"
	"goeed/domain/run"
	"goeed/ports"

	"github.com/jmoiron/sqlx"
)

// Schema holds the DDL for evaluation run persistence
const Schema = `
CREATE TABLE IF NOT EXISTS eval_runs (
	id            UUID PRIMARY KEY,
	language      TEXT NOT NULL,
	alpha         DOUBLE PRECISION NOT NULL,
	rho           DOUBLE PRECISION NOT NULL,
	deletion      DOUBLE PRECISION NOT NULL,
	insertion     DOUBLE PRECISION NOT NULL,
	corpus_score  DOUBLE PRECISION NOT NULL,
	sentences     INTEGER NOT NULL,
	mean          DOUBLE PRECISION,
	median        DOUBLE PRECISION,
	min_score     DOUBLE PRECISION,
	max_score     DOUBLE PRECISION,
	q25           DOUBLE PRECISION,
	q75           DOUBLE PRECISION,
	std_dev       DOUBLE PRECISION,
	skewness      DOUBLE PRECISION,
	ex_kurtosis   DOUBLE PRECISION,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS eval_sentence_scores (
	run_id  UUID NOT NULL REFERENCES eval_runs(id) ON DELETE CASCADE,
	idx     INTEGER NOT NULL,
	score   DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

// RunRepositoryImpl implements RunRepository for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// EnsureSchema creates the evaluation tables when they do not exist yet
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure eval schema: %w", err)
	}
	return nil
}

// runRow mirrors the eval_runs table layout
type runRow struct {
	ID          string          `db:"id"`
	Language    string          `db:"language"`
	Alpha       float64         `db:"alpha"`
	Rho         float64         `db:"rho"`
	Deletion    float64         `db:"deletion"`
	Insertion   float64         `db:"insertion"`
	CorpusScore float64         `db:"corpus_score"`
	Sentences   int             `db:"sentences"`
	Mean        sql.NullFloat64 `db:"mean"`
	Median      sql.NullFloat64 `db:"median"`
	MinScore    sql.NullFloat64 `db:"min_score"`
	MaxScore    sql.NullFloat64 `db:"max_score"`
	Q25         sql.NullFloat64 `db:"q25"`
	Q75         sql.NullFloat64 `db:"q75"`
	StdDev      sql.NullFloat64 `db:"std_dev"`
	Skewness    sql.NullFloat64 `db:"skewness"`
	ExKurtosis  sql.NullFloat64 `db:"ex_kurtosis"`
	CreatedAt   sql.NullTime    `db:"created_at"`
}

// SaveRun stores a finished evaluation and its sentence scores in one transaction
func (r *RunRepositoryImpl) SaveRun(ctx context.Context, evaluation *run.Evaluation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO eval_runs (id, language, alpha, rho, deletion, insertion, corpus_score, sentences,
			mean, median, min_score, max_score, q25, q75, std_dev, skewness, ex_kurtosis, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, evaluation.ID, evaluation.Language,
		evaluation.Params.Alpha, evaluation.Params.Rho, evaluation.Params.Deletion, evaluation.Params.Insertion,
		evaluation.CorpusScore, evaluation.Sentences,
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Mean }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Median }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Min }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Max }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Q25 }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Q75 }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.StdDev }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.Skewness }),
		summaryField(evaluation, func(s *run.ScoreSummary) float64 { return s.ExKurtosis }),
		evaluation.CreatedAt.Time())
	if err != nil {
		return fmt.Errorf("insert eval run: %w", err)
	}

	for i, score := range evaluation.SentenceScores {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO eval_sentence_scores (run_id, idx, score) VALUES ($1, $2, $3)
		`, evaluation.ID, i, score); err != nil {
			return fmt.Errorf("insert sentence score %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves an evaluation by ID, including its sentence scores
func (r *RunRepositoryImpl) GetRun(ctx context.Context, id core.RunID) (*run.Evaluation, error) {
	var row runRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, language, alpha, rho, deletion, insertion, corpus_score, sentences,
			mean, median, min_score, max_score, q25, q75, std_dev, skewness, ex_kurtosis, created_at
		FROM eval_runs WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewRunNotFoundError(id.String())
	}
	if err != nil {
		return nil, err
	}

	evaluation := row.toDomain()
	if err := r.db.SelectContext(ctx, &evaluation.SentenceScores, `
		SELECT score FROM eval_sentence_scores WHERE run_id = $1 ORDER BY idx
	`, id); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// ListRuns returns the most recent evaluations, newest first, without sentence scores
func (r *RunRepositoryImpl) ListRuns(ctx context.Context, limit int) ([]*run.Evaluation, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []runRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, language, alpha, rho, deletion, insertion, corpus_score, sentences,
			mean, median, min_score, max_score, q25, q75, std_dev, skewness, ex_kurtosis, created_at
		FROM eval_runs ORDER BY created_at DESC LIMIT $1
	`, limit); err != nil {
		return nil, err
	}

	evaluations := make([]*run.Evaluation, 0, len(rows))
	for _, row := range rows {
		evaluations = append(evaluations, row.toDomain())
	}
	return evaluations, nil
}

func (row runRow) toDomain() *run.Evaluation {
	evaluation := &run.Evaluation{
		ID:       core.RunID(row.ID),
		Language: eed.Language(row.Language),
		Params: eed.Params{
			Alpha:     row.Alpha,
			Rho:       row.Rho,
			Deletion:  row.Deletion,
			Insertion: row.Insertion,
		},
		CorpusScore: row.CorpusScore,
		Sentences:   row.Sentences,
		CreatedAt:   core.NewTimestamp(row.CreatedAt.Time),
	}
	if row.Mean.Valid {
		evaluation.Summary = &run.ScoreSummary{
			Mean:       row.Mean.Float64,
			Median:     row.Median.Float64,
			Min:        row.MinScore.Float64,
			Max:        row.MaxScore.Float64,
			Q25:        row.Q25.Float64,
			Q75:        row.Q75.Float64,
			StdDev:     row.StdDev.Float64,
			Skewness:   row.Skewness.Float64,
			ExKurtosis: row.ExKurtosis.Float64,
		}
	}
	return evaluation
}

func summaryField(evaluation *run.Evaluation, pick func(*run.ScoreSummary) float64) interface{} {
	if evaluation.Summary == nil {
		return nil
	}
	return pick(evaluation.Summary)
}
