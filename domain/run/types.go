package run

import (
	"goeed/domain/core"
	"goeed/domain/eed"
)

// Evaluation is the persistent record of one finished corpus evaluation
type Evaluation struct {
	ID          core.RunID   `json:"id" db:"id"`
	Language    eed.Language `json:"language" db:"language"`
	Params      eed.Params   `json:"params"`
	CorpusScore float64      `json:"corpus_score" db:"corpus_score"`
	Sentences   int          `json:"sentences" db:"sentences"`
	// SentenceScores is populated only when per-sentence tracking was requested
	SentenceScores []float64      `json:"sentence_scores,omitempty"`
	Summary        *ScoreSummary  `json:"summary,omitempty"`
	CreatedAt      core.Timestamp `json:"created_at" db:"created_at"`
}

// ScoreSummary describes the distribution of per-sentence scores for one run
type ScoreSummary struct {
	Mean       float64 `json:"mean" db:"mean"`
	Median     float64 `json:"median" db:"median"`
	Min        float64 `json:"min" db:"min"`
	Max        float64 `json:"max" db:"max"`
	Q25        float64 `json:"q25" db:"q25"`
	Q75        float64 `json:"q75" db:"q75"`
	StdDev     float64 `json:"std_dev" db:"std_dev"`
	Skewness   float64 `json:"skewness" db:"skewness"`
	ExKurtosis float64 `json:"ex_kurtosis" db:"ex_kurtosis"`
}

// NewEvaluation creates a run record with a fresh time-ordered ID
func NewEvaluation(language eed.Language, params eed.Params) *Evaluation {
	return &Evaluation{
		ID:        core.NewID(),
		Language:  language,
		Params:    params,
		CreatedAt: core.Now(),
	}
}
