package eed

import (
	"math"
	"testing"

	"goeed/domain/core"
)

func mustAligner(t *testing.T) *Aligner {
	t.Helper()
	a, err := NewAligner(LanguageEnglish, DefaultParams())
	if err != nil {
		t.Fatalf("NewAligner failed: %v", err)
	}
	return a
}

func scoreOne(t *testing.T, a *Aligner, hyp, ref string) float64 {
	t.Helper()
	s, err := a.ScoreSentence(hyp, []string{ref})
	if err != nil {
		t.Fatalf("ScoreSentence(%q, %q) failed: %v", hyp, ref, err)
	}
	return s
}

func TestNewAligner_Validation(t *testing.T) {
	if _, err := NewAligner("fr", DefaultParams()); !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for unsupported language, got %v", err)
	}

	bad := DefaultParams()
	bad.Alpha = -1
	if _, err := NewAligner(LanguageEnglish, bad); !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for negative alpha, got %v", err)
	}

	bad = DefaultParams()
	bad.Rho = math.NaN()
	if _, err := NewAligner(LanguageEnglish, bad); !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for NaN rho, got %v", err)
	}

	bad = DefaultParams()
	bad.Insertion = math.Inf(1)
	if _, err := NewAligner(LanguageJapanese, bad); !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for infinite insertion cost, got %v", err)
	}
}

func TestScoreSentence_IdenticalIsZero(t *testing.T) {
	a := mustAligner(t)

	for _, sentence := range []string{
		"same sentence",
		"a",
		"the quick brown fox jumps over the lazy dog",
		"",
	} {
		if got := scoreOne(t, a, sentence, sentence); got != 0 {
			t.Errorf("Identical sentence %q should score exactly 0, got %g", sentence, got)
		}
	}
}

func TestScoreSentence_KnownDistances(t *testing.T) {
	a := mustAligner(t)

	cases := []struct {
		hyp  string
		ref  string
		want float64
	}{
		{"this is the prediction", "this is the reference", 0.330612},
		{"here is an other sample", "here is another one", 0.157407},
	}
	for _, tc := range cases {
		got := scoreOne(t, a, tc.hyp, tc.ref)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("ScoreSentence(%q, %q) = %.6f, want %.6f", tc.hyp, tc.ref, got, tc.want)
		}
		if got <= 0 || got >= 1 {
			t.Errorf("Moderately different sentences should land strictly inside (0,1), got %g", got)
		}
	}
}

func TestScoreSentence_RangeBounds(t *testing.T) {
	a := mustAligner(t)

	pairs := [][2]string{
		{"completely different words here", "the quick brown fox jumps"},
		{"", "some reference"},
		{"a very long hypothesis that keeps going and going", "x"},
		{"x", "a very long reference that keeps going and going"},
		{"world hello", "hello world"},
	}
	for _, pair := range pairs {
		got := scoreOne(t, a, pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Errorf("ScoreSentence(%q, %q) = %g, outside [0, 1]", pair[0], pair[1], got)
		}
	}
}

func TestScoreSentence_EmptyHypothesisBounded(t *testing.T) {
	a := mustAligner(t)

	got := scoreOne(t, a, "", "some reference")
	if math.Abs(got-0.900990) > 1e-6 {
		t.Errorf("Empty hypothesis against a full reference = %.6f, want 0.900990", got)
	}
	if got > 1.0 {
		t.Errorf("Score must stay bounded by 1, got %g", got)
	}
}

func TestScoreSentence_MultiReferenceTakesMinimum(t *testing.T) {
	a := mustAligner(t)

	hyp := "the cat sat on the mat"
	refs := []string{
		"a dog slept on the rug",
		"the cat is on the mat",
		"the cat sat on the mat",
	}

	best := math.Inf(1)
	for _, ref := range refs {
		if s := scoreOne(t, a, hyp, ref); s < best {
			best = s
		}
	}

	got, err := a.ScoreSentence(hyp, refs)
	if err != nil {
		t.Fatalf("ScoreSentence failed: %v", err)
	}
	if got != best {
		t.Errorf("Multi-reference score %g should equal the per-reference minimum %g", got, best)
	}
	if got != 0 {
		t.Errorf("One reference is identical, so the minimum should be 0, got %g", got)
	}
}

func TestScoreSentence_EmptyReferencesRejected(t *testing.T) {
	a := mustAligner(t)

	if _, err := a.ScoreSentence("hello", nil); !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for empty reference list, got %v", err)
	}
}

func TestScoreSentence_ReorderingCheaperThanUnrelated(t *testing.T) {
	a := mustAligner(t)

	reordered := scoreOne(t, a, "world hello", "hello world")
	unrelated := scoreOne(t, a, "completely different words here", "the quick brown fox jumps")
	if reordered >= unrelated {
		t.Errorf("Block reordering (%g) should cost less than unrelated text (%g)", reordered, unrelated)
	}
}

func TestScoreSentence_Deterministic(t *testing.T) {
	a := mustAligner(t)

	first := scoreOne(t, a, "this is the prediction", "this is the reference")
	for i := 0; i < 10; i++ {
		if got := scoreOne(t, a, "this is the prediction", "this is the reference"); got != first {
			t.Fatalf("Score changed across repeated calls: %g vs %g", got, first)
		}
	}
}

func TestScoreCorpus(t *testing.T) {
	a := mustAligner(t)

	hyps := []string{"same sentence", "this is the prediction"}
	refs := [][]string{{"same sentence"}, {"this is the reference"}}

	stats, err := a.ScoreCorpus(hyps, refs)
	if err != nil {
		t.Fatalf("ScoreCorpus failed: %v", err)
	}
	if stats.Sentences != 2 {
		t.Errorf("Expected 2 sentences, got %d", stats.Sentences)
	}
	if len(stats.Scores) != stats.Sentences {
		t.Errorf("Scores length %d should equal sentence count %d", len(stats.Scores), stats.Sentences)
	}
	if stats.Scores[0] != 0 {
		t.Errorf("First pair is identical, want score 0, got %g", stats.Scores[0])
	}
	if math.Abs(stats.Sum/2-0.165306) > 1e-6 {
		t.Errorf("Corpus mean = %.6f, want 0.165306", stats.Sum/2)
	}
}

func TestScoreCorpus_LengthMismatchRejected(t *testing.T) {
	a := mustAligner(t)

	_, err := a.ScoreCorpus([]string{"one", "two"}, [][]string{{"one"}})
	if !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for mismatched corpus lengths, got %v", err)
	}
}

func TestScoreSentence_JapaneseCharacterLevel(t *testing.T) {
	a, err := NewAligner(LanguageJapanese, DefaultParams())
	if err != nil {
		t.Fatalf("NewAligner failed: %v", err)
	}

	if got := scoreOne(t, a, "こんにちは", "こんにちは"); got != 0 {
		t.Errorf("Identical Japanese sentence should score 0, got %g", got)
	}

	// NFKC folds half-width katakana onto the full-width form
	if got := scoreOne(t, a, "ｶﾀｶﾅ", "カタカナ"); got != 0 {
		t.Errorf("Half-width and full-width katakana should normalize equal, got %g", got)
	}

	got := scoreOne(t, a, "こんにちは", "こんばんは")
	if got <= 0 || got >= 1 {
		t.Errorf("Partially matching Japanese pair should land strictly inside (0,1), got %g", got)
	}
}
