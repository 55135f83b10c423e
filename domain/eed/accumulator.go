package eed

import (
	"goeed/domain/core"
)

// Accumulator folds sentence scores into running corpus statistics. Each
// worker owns its own instance; partial accumulators from independent workers
// combine through Merge, which is commutative and associative on the totals.
// The per-sentence list preserves each contribution's local order only -
// callers that need a deterministic global order must merge in a fixed order.
//
// Update and Merge are the only mutators. Finalize and SentenceScores are
// pure reads, so mid-stream monitoring never corrupts ongoing accumulation.
// No internal locking: cross-worker merges happen under the caller's own
// synchronization discipline.
type Accumulator struct {
	sum      float64
	count    int
	tracking bool
	scores   []float64
}

// NewAccumulator creates a zeroed accumulator. When trackPerSentence is set,
// every folded score is also retained in submission order.
func NewAccumulator(trackPerSentence bool) *Accumulator {
	return &Accumulator{tracking: trackPerSentence}
}

// Update folds a batch of sentence scores into the running state, in call order
func (a *Accumulator) Update(scores []float64) {
	for _, s := range scores {
		a.sum += s
	}
	a.count += len(scores)
	if a.tracking {
		a.scores = append(a.scores, scores...)
	}
}

// UpdateStats folds an Aligner corpus result into the running state
func (a *Accumulator) UpdateStats(stats CorpusStats) {
	a.Update(stats.Scores)
}

// Merge folds another accumulator's state into this one. Both sides must
// agree on per-sentence tracking; otherwise the count/list invariant of the
// tracked side would break.
func (a *Accumulator) Merge(other *Accumulator) error {
	if a.tracking != other.tracking {
		return core.ErrTrackingMismatch
	}
	a.sum += other.sum
	a.count += other.count
	if a.tracking {
		a.scores = append(a.scores, other.scores...)
	}
	return nil
}

// Sentences returns the number of sentence scores folded in so far
func (a *Accumulator) Sentences() int {
	return a.count
}

// Finalize computes the corpus-level score, the count-weighted mean of all
// folded sentence scores. It does not reset state and may be called mid-stream.
func (a *Accumulator) Finalize() (float64, error) {
	if a.count == 0 {
		return 0, core.ErrDivisionUndefined
	}
	return a.sum / float64(a.count), nil
}

// SentenceScores returns a copy of the retained per-sentence scores
func (a *Accumulator) SentenceScores() ([]float64, error) {
	if !a.tracking {
		return nil, core.ErrFeatureNotEnabled
	}
	out := make([]float64, len(a.scores))
	copy(out, a.scores)
	return out, nil
}
