package writing

import (
	"github.com/cefr-platform/backend/internal/models"
)

// Classifier thresholds. These were tuned empirically; they are constants
// here rather than config because the test fixtures depend on them, but they
// are not load-bearing invariants — adjust together with the tests.
const (
	hardMinWords         = 20
	severeUnderMinWords  = 50
	minUniqueWordRatio   = 0.20
	spamUniqueWordRatio  = 0.10
	maxDuplicateSentence = 0.30
	minAlphaCharRatio    = 0.50
	maxTopTokenShare     = 0.25
	maxBigramRepeat      = 0.20
	maxTrigramRepeat     = 0.15
	maxFourgramRepeat    = 0.10
	gibberishZeroRatio   = 0.25
	gibberishOneRatio    = 0.35
)

// Classify runs the ordered worthlessness rules over the extracted features.
// First match wins; length failures must dominate vocabulary-diversity
// failures because diversity is meaningless on near-empty text. A worthless
// verdict carries the authoritative capped score (0 or 1) and downstream
// scoring is skipped entirely.
//
// One exception to first-match-wins: a text below the gibberish floor is
// demoted to score 0 even when an earlier rule already capped it at 1.
// Unrecognizable text earns nothing, whatever its length.
func Classify(f models.LexicalFeatures) models.ValidityVerdict {
	v := classify(f)
	if v.Worthless && v.CappedScore > 0 && f.RecognizableWordRatio < gibberishZeroRatio {
		v.CappedScore = 0
	}
	return v
}

func classify(f models.LexicalFeatures) models.ValidityVerdict {
	if f.WordCount < hardMinWords {
		return worthless(0, "insufficient length")
	}
	if f.WordCount < severeUnderMinWords {
		return worthless(1, "severely under minimum length")
	}
	if f.UniqueWordRatio < minUniqueWordRatio {
		if f.UniqueWordRatio < spamUniqueWordRatio {
			return worthless(0, "extremely low vocabulary diversity")
		}
		return worthless(1, "very low vocabulary diversity")
	}
	if f.SentenceCount >= 2 && f.DuplicateSentenceRatio > maxDuplicateSentence {
		return worthless(1, "repeated sentences")
	}
	if f.AlphaCharRatio < minAlphaCharRatio {
		return worthless(1, "non-alphabetic spam")
	}
	if f.TopTokenShare > maxTopTokenShare {
		return worthless(1, "single-word repetition")
	}
	if f.BigramRepeatRatio > maxBigramRepeat ||
		f.TrigramRepeatRatio > maxTrigramRepeat ||
		f.FourgramRepeatRatio > maxFourgramRepeat {
		return worthless(1, "repeated phrases")
	}
	if f.RecognizableWordRatio < gibberishZeroRatio {
		return worthless(0, "unrecognizable text")
	}
	if f.RecognizableWordRatio < gibberishOneRatio {
		return worthless(1, "mostly unrecognizable text")
	}
	return models.ValidityVerdict{}
}

func worthless(score int, reason string) models.ValidityVerdict {
	return models.ValidityVerdict{Worthless: true, CappedScore: score, Reason: reason}
}
