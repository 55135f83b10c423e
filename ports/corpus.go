package ports

// CorpusSource supplies line-aligned hypothesis/reference pairs for scoring
type CorpusSource interface {
	// Load returns the hypotheses and, for each hypothesis, its reference set.
	// Both slices are index-aligned and equal in length.
	Load() (hypotheses []string, references [][]string, err error)
}
