package eed

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// English preprocessing mirrors the WMT EED reference tooling: punctuation is
// detached into its own token, runs of whitespace collapse, and the sentence
// is wrapped in single spaces so the aligner sees a word boundary at both ends.
var (
	enPunctuation = strings.NewReplacer(
		".", " .",
		"!", " !",
		"?", " ?",
		",", " ,",
	)

	reWhitespace   = regexp.MustCompile(`\s+`)
	reDecimal      = regexp.MustCompile(`(\d) ([.,]) (\d)`)
	reAbbreviation = regexp.MustCompile(`(Dr|Jr|Prof|Rev|Gen|Mr|Mt|Mrs|Ms) \.`)
)

func preprocessEnglish(sentence string) string {
	sentence = strings.TrimRight(sentence, " \t\n\r")
	sentence = enPunctuation.Replace(sentence)
	sentence = reWhitespace.ReplaceAllString(sentence, " ")
	sentence = reDecimal.ReplaceAllString(sentence, "$1$2$3")
	sentence = reAbbreviation.ReplaceAllString(sentence, "$1.")
	return " " + sentence + " "
}

// Japanese sentences are aligned at the character level with no word-boundary
// wrapping; NFKC folds full-width/half-width variants onto one code point.
func preprocessJapanese(sentence string) string {
	sentence = strings.TrimRight(sentence, " \t\n\r")
	return norm.NFKC.String(sentence)
}

func preprocessorFor(lang Language) func(string) string {
	if lang == LanguageJapanese {
		return preprocessJapanese
	}
	return preprocessEnglish
}
