package writing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cefr-platform/backend/internal/models"
)

var sentenceSplitter = regexp.MustCompile(`[.!?\n]+`)

// Extract computes the lexical feature record for one text. It is pure and
// total: any input, including the empty string, yields a complete record
// with zero/neutral defaults.
func Extract(text string) models.LexicalFeatures {
	tokens := strings.Fields(text)
	f := models.LexicalFeatures{WordCount: len(tokens)}
	if f.WordCount == 0 {
		return f
	}

	lower := make([]string, len(tokens))
	unique := make(map[string]bool, len(tokens))
	for i, t := range tokens {
		lt := strings.ToLower(t)
		lower[i] = lt
		unique[lt] = true
	}
	f.UniqueWordRatio = float64(len(unique)) / float64(f.WordCount)

	sentences := splitSentences(text)
	f.SentenceCount = len(sentences)
	if f.SentenceCount > 0 {
		f.AvgSentenceLength = float64(f.WordCount) / float64(f.SentenceCount)
		f.DuplicateSentenceRatio = duplicateSentenceRatio(sentences)
	}

	f.AlphaCharRatio = alphaCharRatio(text)
	f.TopTokenShare = topTokenShare(lower)
	f.BigramRepeatRatio = maxNgramRepeatRatio(lower, 2)
	f.TrigramRepeatRatio = maxNgramRepeatRatio(lower, 3)
	f.FourgramRepeatRatio = maxNgramRepeatRatio(lower, 4)
	f.RecognizableWordRatio = recognizableWordRatio(lower)

	trimmed := strings.TrimSpace(text)
	for _, r := range trimmed {
		f.HasLeadingCapital = unicode.IsUpper(r)
		break
	}
	f.HasTerminalPunctuation = strings.HasSuffix(trimmed, ".") ||
		strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?")

	return f
}

// splitSentences segments on sentence-ending punctuation and newlines,
// discarding fragments of 3 characters or fewer.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplitter.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 3 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func duplicateSentenceRatio(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	distinct := make(map[string]bool, len(sentences))
	for _, s := range sentences {
		distinct[strings.ToLower(s)] = true
	}
	return float64(len(sentences)-len(distinct)) / float64(len(sentences))
}

// alphaCharRatio is the share of alphabetic runes among all non-whitespace
// runes. Pure symbol or digit spam scores near zero.
func alphaCharRatio(text string) float64 {
	alpha, total := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alpha) / float64(total)
}

// topTokenShare is the frequency share of the most common non-stopword token.
func topTokenShare(lower []string) float64 {
	counts := make(map[string]int)
	total := 0
	for _, t := range lower {
		w := stripPunctuation(t)
		if w == "" || stopwords[w] {
			continue
		}
		counts[w]++
		total++
	}
	if total == 0 {
		return 0
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return float64(max) / float64(total)
}

// maxNgramRepeatRatio is the occurrence share of the most frequent n-gram.
// Texts shorter than 3n words cannot meaningfully repeat, so the ratio is 0.
func maxNgramRepeatRatio(lower []string, n int) float64 {
	if len(lower) < 3*n {
		return 0
	}
	counts := make(map[string]int)
	total := len(lower) - n + 1
	for i := 0; i < total; i++ {
		counts[strings.Join(lower[i:i+n], " ")]++
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return float64(max) / float64(total)
}

// recognizableWordRatio is the fraction of alphabetic tokens found in the
// reference vocabulary. It only signals gibberish when very low; individual
// unknown words (names, rare vocabulary) are expected.
func recognizableWordRatio(lower []string) float64 {
	known, total := 0, 0
	for _, t := range lower {
		w := stripPunctuation(t)
		if w == "" || !isAlphabetic(w) {
			continue
		}
		total++
		if referenceVocabulary[w] {
			known++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(known) / float64(total)
}

func stripPunctuation(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func isAlphabetic(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
