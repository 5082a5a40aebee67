package writing

import (
	"strings"
	"testing"

	"github.com/cefr-platform/backend/internal/models"
)

// soundFeatures is a baseline that passes every rule; cases mutate one signal.
func soundFeatures() models.LexicalFeatures {
	return models.LexicalFeatures{
		WordCount:              120,
		UniqueWordRatio:        0.60,
		SentenceCount:          8,
		AvgSentenceLength:      15,
		AlphaCharRatio:         0.85,
		TopTokenShare:          0.08,
		BigramRepeatRatio:      0.05,
		TrigramRepeatRatio:     0.03,
		FourgramRepeatRatio:    0.02,
		RecognizableWordRatio:  0.80,
		DuplicateSentenceRatio: 0,
		HasLeadingCapital:      true,
		HasTerminalPunctuation: true,
	}
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.LexicalFeatures)
		worthless bool
		capped    int
		reason    string
	}{
		{"sound text", func(f *models.LexicalFeatures) {}, false, 0, ""},
		{"too short", func(f *models.LexicalFeatures) { f.WordCount = 19 }, true, 0, "insufficient length"},
		{"severely under length", func(f *models.LexicalFeatures) { f.WordCount = 49 }, true, 1, "severely under minimum length"},
		{"low diversity", func(f *models.LexicalFeatures) { f.UniqueWordRatio = 0.15 }, true, 1, "very low vocabulary diversity"},
		{"extreme low diversity", func(f *models.LexicalFeatures) { f.UniqueWordRatio = 0.05 }, true, 0, "extremely low vocabulary diversity"},
		{"repeated sentences", func(f *models.LexicalFeatures) { f.DuplicateSentenceRatio = 0.50 }, true, 1, "repeated sentences"},
		{"symbol spam", func(f *models.LexicalFeatures) { f.AlphaCharRatio = 0.30 }, true, 1, "non-alphabetic spam"},
		{"single word repetition", func(f *models.LexicalFeatures) { f.TopTokenShare = 0.40 }, true, 1, "single-word repetition"},
		{"phrase repetition", func(f *models.LexicalFeatures) { f.TrigramRepeatRatio = 0.20 }, true, 1, "repeated phrases"},
		{"gibberish", func(f *models.LexicalFeatures) { f.RecognizableWordRatio = 0.20 }, true, 0, "unrecognizable text"},
		{"mostly gibberish", func(f *models.LexicalFeatures) { f.RecognizableWordRatio = 0.30 }, true, 1, "mostly unrecognizable text"},
	}

	for _, tt := range tests {
		f := soundFeatures()
		tt.mutate(&f)
		v := Classify(f)
		if v.Worthless != tt.worthless {
			t.Errorf("%s: Worthless = %v, want %v", tt.name, v.Worthless, tt.worthless)
			continue
		}
		if v.CappedScore != tt.capped {
			t.Errorf("%s: CappedScore = %d, want %d", tt.name, v.CappedScore, tt.capped)
		}
		if v.Reason != tt.reason {
			t.Errorf("%s: Reason = %q, want %q", tt.name, v.Reason, tt.reason)
		}
	}
}

func TestClassifyLengthDominatesDiversity(t *testing.T) {
	f := soundFeatures()
	f.WordCount = 10
	f.UniqueWordRatio = 0.05
	v := Classify(f)
	if v.Reason != "insufficient length" {
		t.Errorf("Reason = %q, want length rule to win over diversity", v.Reason)
	}
}

func TestClassifyGibberishDemotesCappedScore(t *testing.T) {
	// Caught by the length rule at score 1, but unrecognizable text never
	// earns above 0.
	f := soundFeatures()
	f.WordCount = 30
	f.RecognizableWordRatio = 0.10
	v := Classify(f)
	if !v.Worthless {
		t.Fatal("expected worthless verdict")
	}
	if v.CappedScore != 0 {
		t.Errorf("CappedScore = %d, want 0 for gibberish", v.CappedScore)
	}
}

func TestClassifyEndToEnd(t *testing.T) {
	// A ten word response is rejected outright.
	v := Classify(Extract("This restaurant is very good and I like it much"))
	if !v.Worthless || v.CappedScore != 0 {
		t.Errorf("short text: got %+v, want worthless with score 0", v)
	}

	// Forty repetitions of one token: under length, and unrecognizable.
	v = Classify(Extract(strings.TrimSpace(strings.Repeat("ok ", 40))))
	if !v.Worthless {
		t.Fatal("spam text should be worthless")
	}
	if v.CappedScore != 0 {
		t.Errorf("spam text: CappedScore = %d, want 0", v.CappedScore)
	}

	// A genuine short letter passes.
	letter := "Dear John, thank you for your letter. I was very happy to read " +
		"about your new job in the city. Last weekend my family visited a small " +
		"restaurant near the park and the food was delicious. We talked about " +
		"our holiday plans for the summer. I hope you can come with us this " +
		"year. Please write soon and tell me about your work."
	v = Classify(Extract(letter))
	if v.Worthless {
		t.Errorf("genuine letter rejected: %+v", v)
	}
}
