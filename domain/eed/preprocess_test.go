package eed

import (
	"testing"
)

func TestPreprocessEnglish(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello world", " hello world "},
		{"hello, world!", " hello , world ! "},
		{"trailing spaces   ", " trailing spaces "},
		{"double  spaces", " double spaces "},
		{"", "  "},
	}
	for _, tc := range cases {
		if got := preprocessEnglish(tc.in); got != tc.want {
			t.Errorf("preprocessEnglish(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPreprocessEnglish_Abbreviations(t *testing.T) {
	// Honorific periods are re-attached after punctuation splitting
	if got := preprocessEnglish("Mr. Smith arrived."); got != " Mr. Smith arrived . " {
		t.Errorf("Abbreviation handling broke: %q", got)
	}
}

func TestPreprocessJapanese(t *testing.T) {
	// NFKC folds half-width katakana and full-width latin onto canonical forms
	if got := preprocessJapanese("ｶﾀｶﾅ"); got != "カタカナ" {
		t.Errorf("preprocessJapanese half-width fold = %q, want %q", got, "カタカナ")
	}
	if got := preprocessJapanese("Ｇｏ"); got != "Go" {
		t.Errorf("preprocessJapanese full-width latin fold = %q, want %q", got, "Go")
	}
	// No space wrapping for character-level alignment
	if got := preprocessJapanese("こんにちは  "); got != "こんにちは" {
		t.Errorf("preprocessJapanese should only strip trailing whitespace, got %q", got)
	}
}

func TestPreprocessorFor(t *testing.T) {
	if got := preprocessorFor(LanguageEnglish)("x"); got != " x " {
		t.Errorf("English preprocessor should wrap in spaces, got %q", got)
	}
	if got := preprocessorFor(LanguageJapanese)("x"); got != "x" {
		t.Errorf("Japanese preprocessor should not wrap, got %q", got)
	}
}
