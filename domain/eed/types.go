package eed

import (
	"math"

	"goeed/domain/core"
)

// Language selects the preprocessing policy applied before alignment.
// It is a closed enum checked once at Aligner construction.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// ParseLanguage validates a language tag against the supported set
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageJapanese:
		return Language(s), nil
	}
	return "", core.ErrInvalidLanguage
}

// Params holds the four alignment cost parameters, fixed for the lifetime
// of one Aligner.
type Params struct {
	// Alpha is the penalty for a jump between characters
	Alpha float64 `json:"alpha"`
	// Rho is the coverage cost, charged per repeated visit of a position
	Rho float64 `json:"rho"`
	// Deletion is the penalty for deleting a character
	Deletion float64 `json:"deletion"`
	// Insertion is the penalty for inserting or substituting a character
	Insertion float64 `json:"insertion"`
}

// DefaultParams returns the published EED parameter set
func DefaultParams() Params {
	return Params{
		Alpha:     2.0,
		Rho:       0.3,
		Deletion:  0.2,
		Insertion: 1.0,
	}
}

// Validate checks that every cost parameter is finite and non-negative
func (p Params) Validate() error {
	for _, v := range []float64{p.Alpha, p.Rho, p.Deletion, p.Insertion} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return core.ErrInvalidCost
		}
	}
	return nil
}

// CorpusStats is the raw output of scoring a corpus: the component-wise
// inputs an Accumulator folds in, before any reduction.
type CorpusStats struct {
	// Sum is the total of all sentence scores
	Sum float64 `json:"sum"`
	// Sentences is the number of scored sentence pairs
	Sentences int `json:"sentences"`
	// Scores holds the per-sentence scores in submission order
	Scores []float64 `json:"scores"`
}
