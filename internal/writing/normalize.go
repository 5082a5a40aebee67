package writing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cefr-platform/backend/internal/models"
)

// offTopicPhrases forces a text's score to 0 whenever the evaluator's own
// feedback admits the content did not address the task. LLM judges are
// systematically lenient with off-topic text: they award a nonzero number
// for language quality even while describing the response as irrelevant, so
// the override runs regardless of the numeric score supplied.
var offTopicPhrases = []string{
	"off-topic",
	"off topic",
	"irrelevant",
	"does not address",
	"doesn't address",
	"not related to the task",
	"unrelated to the task",
	"gibberish",
	"nonsensical",
	"no meaningful content",
	"empty response",
	"empty submission",
}

// NormalizeCriterion turns one raw criterion object into the final
// CriterionFeedback. It reports false when no usable score can be parsed,
// in which case the caller falls back to the algorithmic scorer for that
// text.
func NormalizeCriterion(kind models.TaskKind, raw map[string]interface{}) (models.CriterionFeedback, bool) {
	folded := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		folded[canonicalKey(k)] = v
	}

	score, ok := parseScore(folded["score"])
	if !ok {
		return models.CriterionFeedback{}, false
	}
	score = clampScore(score)

	cf := models.CriterionFeedback{
		Score:         score,
		ScoringMethod: models.ScoredAI,
	}
	if kind == models.TaskEssay {
		cf.TaskAchievement = stringField(folded, "taskachievement", "task")
		cf.CoherenceCohesion = stringField(folded, "coherencecohesion", "coherence")
		cf.LexicalResource = stringField(folded, "lexicalresource", "lexical")
		cf.GrammaticalRange = stringField(folded, "grammaticalrange", "grammar")
	} else {
		cf.Content = stringField(folded, "content")
		cf.Organization = stringField(folded, "organization", "organisation")
		cf.Language = stringField(folded, "language")
		cf.Accuracy = stringField(folded, "accuracy")
	}

	if containsOffTopicPhrase(folded) {
		cf.Score = 0
	}
	cf.BandLabel = BandLabel(cf.Score)
	return cf, true
}

// parseScore tolerates numbers, numeric strings, and "x/9" style fractions.
func parseScore(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(val)
		if i := strings.Index(s, "/"); i > 0 {
			s = strings.TrimSpace(s[:i])
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 9 {
		return 9
	}
	return s
}

// containsOffTopicPhrase scans every string field of the criterion object,
// not just the known qualitative keys, so a verdict hidden in an unexpected
// field still triggers the override.
func containsOffTopicPhrase(folded map[string]interface{}) bool {
	for key, v := range folded {
		if key == "score" {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(s)
		for _, phrase := range offTopicPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}

func stringField(folded map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := folded[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

var bandDescriptors = []string{
	"no assessable English",  // 0
	"non-user",               // 1
	"intermittent user",      // 2
	"extremely limited user", // 3
	"limited user",           // 4
	"modest user",            // 5
	"competent user",         // 6
	"good user",              // 7
	"very good user",         // 8
	"expert user",            // 9
}

// BandLabel renders a human-readable band for a resolved score.
func BandLabel(score float64) string {
	idx := int(score + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx > 9 {
		idx = 9
	}
	return fmt.Sprintf("Band %.1f — %s", score, bandDescriptors[idx])
}
