package app

import (
	"context"
	"math"
	"runtime"

	"goeed/domain/core"
	"goeed/domain/eed"
	"goeed/domain/run"
	"goeed/ports"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// EvalService scores a corpus across parallel workers and reduces the partial
// results into one evaluation run. Each worker owns a private accumulator;
// partials merge in shard order after the group joins, so the per-sentence
// list always comes out in submission order regardless of worker scheduling.
type EvalService struct {
	repo    ports.RunRepository // nil disables persistence
	workers int
}

// EvalRequest defines the inputs for one corpus evaluation
type EvalRequest struct {
	Language         eed.Language `json:"language"`
	Params           eed.Params   `json:"params"`
	Hypotheses       []string     `json:"hypotheses"`
	References       [][]string   `json:"references"`
	TrackPerSentence bool         `json:"track_per_sentence"`
}

// NewEvalService creates an evaluation service. workers <= 0 selects one
// worker per available CPU.
func NewEvalService(repo ports.RunRepository, workers int) *EvalService {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &EvalService{repo: repo, workers: workers}
}

// Evaluate scores the corpus, reduces worker partials, attaches distribution
// statistics, and persists the run when a repository is configured.
func (s *EvalService) Evaluate(ctx context.Context, req EvalRequest) (*run.Evaluation, error) {
	aligner, err := eed.NewAligner(req.Language, req.Params)
	if err != nil {
		return nil, err
	}
	if len(req.Hypotheses) != len(req.References) {
		return nil, core.ErrCorpusMismatch
	}
	if len(req.Hypotheses) == 0 {
		return nil, core.ErrDivisionUndefined
	}

	// Workers always track per-sentence scores internally: the summary
	// statistics need the full distribution even when the caller does not.
	partials, err := s.scoreShards(ctx, aligner, req.Hypotheses, req.References)
	if err != nil {
		return nil, err
	}

	total := eed.NewAccumulator(true)
	for _, partial := range partials {
		if err := total.Merge(partial); err != nil {
			return nil, err
		}
	}

	corpusScore, err := total.Finalize()
	if err != nil {
		return nil, err
	}
	scores, err := total.SentenceScores()
	if err != nil {
		return nil, err
	}

	evaluation := run.NewEvaluation(req.Language, req.Params)
	evaluation.CorpusScore = corpusScore
	evaluation.Sentences = total.Sentences()
	evaluation.Summary = summarize(scores)
	if req.TrackPerSentence {
		evaluation.SentenceScores = scores
	}

	if s.repo != nil {
		if err := s.repo.SaveRun(ctx, evaluation); err != nil {
			return nil, err
		}
	}
	return evaluation, nil
}

// scoreShards splits the corpus into contiguous shards, one accumulator per
// worker, and returns the partials indexed by shard so merges stay ordered.
func (s *EvalService) scoreShards(ctx context.Context, aligner *eed.Aligner, hyps []string, refs [][]string) ([]*eed.Accumulator, error) {
	workers := s.workers
	if workers > len(hyps) {
		workers = len(hyps)
	}
	shardSize := (len(hyps) + workers - 1) / workers

	partials := make([]*eed.Accumulator, 0, workers)
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(hyps); start += shardSize {
		end := start + shardSize
		if end > len(hyps) {
			end = len(hyps)
		}

		partial := eed.NewAccumulator(true)
		partials = append(partials, partial)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shard, err := aligner.ScoreCorpus(hyps[start:end], refs[start:end])
			if err != nil {
				return err
			}
			partial.UpdateStats(shard)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// summarize computes distribution statistics over the per-sentence scores.
// Mirrors the split used elsewhere in the codebase: order statistics via
// montanaflynn, moments via gonum.
func summarize(scores []float64) *run.ScoreSummary {
	if len(scores) == 0 {
		return nil
	}

	mean, _ := stats.Mean(scores)
	median, _ := stats.Median(scores)
	minScore, _ := stats.Min(scores)
	maxScore, _ := stats.Max(scores)
	q25, _ := stats.Percentile(scores, 25)
	q75, _ := stats.Percentile(scores, 75)

	summary := &run.ScoreSummary{
		Mean:   mean,
		Median: median,
		Min:    minScore,
		Max:    maxScore,
		Q25:    q25,
		Q75:    q75,
	}
	// The bias-corrected moments degenerate on tiny samples (skewness needs
	// n >= 3, excess kurtosis n >= 4) and on zero-variance data; NaN must
	// never reach the record because encoding/json refuses to marshal it.
	if len(scores) >= 2 {
		summary.StdDev = finiteOrZero(stat.StdDev(scores, nil))
	}
	if len(scores) >= 3 {
		summary.Skewness = finiteOrZero(stat.Skew(scores, nil))
	}
	if len(scores) >= 4 {
		summary.ExKurtosis = finiteOrZero(stat.ExKurtosis(scores, nil))
	}
	return summary
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
