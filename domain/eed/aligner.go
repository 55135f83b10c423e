package eed

import (
	"math"

	"goeed/domain/core"
)

// Aligner computes the extended edit distance between a hypothesis and one or
// more references. It extends Levenshtein distance with a jump operation that
// models block reordering, plus a coverage penalty that charges repeated
// visits of the same hypothesis position so jumps cannot fake cheap matches.
//
// An Aligner is stateless after construction and safe for concurrent use.
type Aligner struct {
	language   Language
	params     Params
	preprocess func(string) string
}

// NewAligner creates an aligner for the given language and cost parameters
func NewAligner(language Language, params Params) (*Aligner, error) {
	if _, err := ParseLanguage(string(language)); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{
		language:   language,
		params:     params,
		preprocess: preprocessorFor(language),
	}, nil
}

// Language returns the preprocessing policy the aligner was built with
func (a *Aligner) Language() Language {
	return a.language
}

// Params returns the cost parameters the aligner was built with
func (a *Aligner) Params() Params {
	return a.params
}

// ScoreSentence scores one hypothesis against a set of references and returns
// the minimum normalized distance over all references, in [0, 1]. An empty
// reference set violates the contract.
func (a *Aligner) ScoreSentence(hypothesis string, references []string) (float64, error) {
	if len(references) == 0 {
		return 0, core.ErrEmptyReferences
	}

	hyp := []rune(a.preprocess(hypothesis))

	best := math.Inf(1)
	for _, reference := range references {
		ref := []rune(a.preprocess(reference))
		if score := a.distance(hyp, ref); score < best {
			best = score
		}
	}
	return best, nil
}

// ScoreCorpus scores each hypothesis against its reference set and returns
// the raw sum, count, and per-sentence scores in submission order.
func (a *Aligner) ScoreCorpus(hypotheses []string, references [][]string) (CorpusStats, error) {
	if len(hypotheses) != len(references) {
		return CorpusStats{}, core.ErrCorpusMismatch
	}

	stats := CorpusStats{Scores: make([]float64, 0, len(hypotheses))}
	for i, hypothesis := range hypotheses {
		score, err := a.ScoreSentence(hypothesis, references[i])
		if err != nil {
			return CorpusStats{}, err
		}
		stats.Sum += score
		stats.Sentences++
		stats.Scores = append(stats.Scores, score)
	}
	return stats, nil
}

// distance runs the extended edit distance DP for one hypothesis/reference
// pair and normalizes the result into [0, 1].
//
// row[i] holds the cheapest cost of aligning the first w reference symbols
// against the first i hypothesis symbols. After each reference symbol the
// cheapest hypothesis position is recorded; at a word boundary every cell may
// additionally be reached by jumping from that position at cost alpha. The
// jump relaxation uses strict less-than so an equal-cost jump never displaces
// a monotone path, keeping visit counts deterministic.
func (a *Aligner) distance(hyp, ref []rune) float64 {
	p := a.params

	// visits[i] counts arrivals at hypothesis position i beyond the first
	visits := make([]int, len(hyp)+1)
	for i := range visits {
		visits[i] = -1
	}

	row := make([]float64, len(hyp)+1)
	next := make([]float64, len(hyp)+1)
	for i := 1; i < len(row); i++ {
		row[i] = 1.0
	}

	for w := 1; w <= len(ref); w++ {
		next[0] = row[0] + 1.0
		for i := 1; i <= len(hyp); i++ {
			sub := p.Insertion
			if ref[w-1] == hyp[i-1] {
				sub = 0
			}
			next[i] = min3(
				next[i-1]+p.Deletion,
				row[i-1]+sub,
				row[i]+p.Insertion,
			)
		}

		// First-index minimum keeps tie-breaking stable
		minIndex := 0
		for i := 1; i <= len(hyp); i++ {
			if next[i] < next[minIndex] {
				minIndex = i
			}
		}
		visits[minIndex]++

		if ref[w-1] == ' ' {
			jump := p.Alpha + next[minIndex]
			for i := range next {
				if jump < next[i] {
					next[i] = jump
				}
			}
		}

		row, next = next, row
	}

	repetitions := 0
	for _, v := range visits {
		if v > 0 {
			repetitions += v
		}
	}
	coverage := p.Rho * float64(repetitions)

	denominator := float64(len(ref)) + coverage
	if denominator < 1.0 {
		denominator = 1.0
	}
	score := (row[len(hyp)] + coverage) / denominator
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
