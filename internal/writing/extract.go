package writing

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// RawJudgment is the structure recovered from a provider response before
// normalization. Criterion values stay as loose maps because providers vary
// key casing and field sets.
type RawJudgment struct {
	Task1           map[string]interface{}
	Task2           map[string]interface{}
	Essay           map[string]interface{}
	GeneralFeedback string
}

var trailingCommas = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJudgment recovers a judgment object from free-form model output.
// It is a chain of tolerant parsers tried in order, each total and
// side-effect free; the first success wins. It never panics on any input:
// when nothing JSON-like can be recovered it reports false and the caller
// falls back to the algorithmic scorer.
func ExtractJudgment(raw string) (*RawJudgment, bool) {
	for _, candidate := range candidates(raw) {
		if j, ok := parseCandidate(candidate); ok {
			return j, true
		}
	}
	return nil, false
}

// candidates yields progressively more aggressive recoveries of the raw
// text: as-is, code fences stripped, trailing commas removed, and finally
// the slice between the first '{' and the last '}'.
func candidates(raw string) []string {
	out := []string{raw}

	stripped := stripCodeFences(raw)
	if stripped != raw {
		out = append(out, stripped)
	}

	cleaned := trailingCommas.ReplaceAllString(stripped, "$1")
	if cleaned != stripped {
		out = append(out, cleaned)
	}

	if sliced, ok := sliceBraces(stripped); ok {
		out = append(out, sliced, trailingCommas.ReplaceAllString(sliced, "$1"))
	}
	return out
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func sliceBraces(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// parseCandidate validates one candidate string and folds its keys to the
// canonical task1/task2/essay/general_feedback names. A candidate is
// accepted only when all three task keys are present and each maps to an
// object, not a scalar or list.
func parseCandidate(candidate string) (*RawJudgment, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || !gjson.Valid(candidate) {
		return nil, false
	}

	root := gjson.Parse(candidate)
	if !root.IsObject() {
		return nil, false
	}

	j := &RawJudgment{}
	root.ForEach(func(key, value gjson.Result) bool {
		switch canonicalKey(key.String()) {
		case "task1":
			j.Task1 = asObject(value)
		case "task2":
			j.Task2 = asObject(value)
		case "essay":
			j.Essay = asObject(value)
		case "generalfeedback", "feedback":
			if value.Type == gjson.String {
				j.GeneralFeedback = value.String()
			}
		}
		return true
	})

	if j.Task1 == nil || j.Task2 == nil || j.Essay == nil {
		return nil, false
	}
	return j, true
}

func asObject(value gjson.Result) map[string]interface{} {
	if !value.IsObject() {
		return nil
	}
	if m, ok := value.Value().(map[string]interface{}); ok {
		return m
	}
	return nil
}

// canonicalKey folds key variants like "Task 1", "task_2", "ESSAY" onto the
// canonical names by lowercasing and dropping spaces, underscores, and
// hyphens.
func canonicalKey(key string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(key)) {
		switch r {
		case ' ', '_', '-':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
