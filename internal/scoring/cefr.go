package scoring

import "github.com/cefr-platform/backend/internal/models"

// Band is one row of the CEFR lookup table. Thresholds are strictly
// descending and A1 at 0 is the catch-all floor, so every percentage in
// [0, 100] maps to exactly one level.
type Band struct {
	Level         string
	MinPercentage float64
	Description   string
}

var bands = []Band{
	{Level: "C2", MinPercentage: 90, Description: "Mastery — can understand with ease virtually everything heard or read"},
	{Level: "C1", MinPercentage: 80, Description: "Advanced — can express ideas fluently and spontaneously for complex purposes"},
	{Level: "B2", MinPercentage: 70, Description: "Upper intermediate — can interact with a degree of fluency with native speakers"},
	{Level: "B1", MinPercentage: 55, Description: "Intermediate — can deal with most situations likely to arise while travelling"},
	{Level: "A2", MinPercentage: 40, Description: "Elementary — can communicate in simple and routine tasks"},
	{Level: "A1", MinPercentage: 0, Description: "Beginner — can understand and use familiar everyday expressions"},
}

// Bands returns the full table, highest level first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// LevelFor scans the table top-down and returns the first band whose
// threshold the percentage meets or exceeds.
func LevelFor(percentage float64) Band {
	for _, b := range bands {
		if percentage >= b.MinPercentage {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Writing-section task weights: the two short tasks count a quarter each,
// the essay counts half.
const (
	Task1Weight = 0.25
	Task2Weight = 0.25
	EssayWeight = 0.50
)

// WritingOverall combines the three per-text band scores into the section
// score and percentage. When all three scores are exactly zero the
// percentage is forced to zero so no rounding artifact can lift it.
func WritingOverall(task1, task2, essay float64) (score, percentage float64) {
	score = task1*Task1Weight + task2*Task2Weight + essay*EssayWeight
	if task1 == 0 && task2 == 0 && essay == 0 {
		return 0, 0
	}
	percentage = clampPercentage(score / 9.0 * 100.0)
	return score, percentage
}

// SessionWeights is the section weighting for the final CEFR level.
type SessionWeights struct {
	Reading   float64
	Listening float64
	Writing   float64
}

// DefaultSessionWeights is the canonical 30/30/40 configuration.
var DefaultSessionWeights = SessionWeights{Reading: 0.30, Listening: 0.30, Writing: 0.40}

// SessionOverall combines the three section percentages into the final
// session-level result using the same band table.
func SessionOverall(readingPct, listeningPct, writingPct float64, w SessionWeights) models.SessionResult {
	overall := clampPercentage(readingPct*w.Reading + listeningPct*w.Listening + writingPct*w.Writing)
	band := LevelFor(overall)
	return models.SessionResult{
		ReadingPercentage:   readingPct,
		ListeningPercentage: listeningPct,
		WritingPercentage:   writingPct,
		OverallPercentage:   overall,
		CEFRLevel:           band.Level,
		LevelDescription:    band.Description,
	}
}

func clampPercentage(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
