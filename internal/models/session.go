package models

import "time"

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// TestSession tracks one candidate's pass through the three sections.
type TestSession struct {
	ID                int64         `json:"id"`
	SessionID         string        `json:"session_id"`
	Status            SessionStatus `json:"status"`
	ReadingScore      int           `json:"reading_score"`
	ReadingTotal      int           `json:"reading_total"`
	ListeningScore    int           `json:"listening_score"`
	ListeningTotal    int           `json:"listening_total"`
	WritingScore      float64       `json:"writing_score"`
	WritingPercentage float64       `json:"writing_percentage"`
	WritingFeedback   string        `json:"writing_feedback,omitempty"`
	OverallLevel      string        `json:"overall_level,omitempty"`
	StartedAt         time.Time     `json:"started_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

type QuestionSection string

const (
	SectionReading   QuestionSection = "reading"
	SectionListening QuestionSection = "listening"
)

// AnswerRecord is one stored objective answer.
type AnswerRecord struct {
	ID         int64           `json:"id"`
	SessionID  string          `json:"session_id"`
	Section    QuestionSection `json:"section"`
	QuestionID int64           `json:"question_id"`
	UserAnswer string          `json:"user_answer"`
	IsCorrect  bool            `json:"is_correct"`
	CreatedAt  time.Time       `json:"created_at"`
}

type StartTestResponse struct {
	SessionID          string              `json:"session_id"`
	ReadingQuestions   []ReadingQuestion   `json:"reading_questions"`
	ListeningQuestions []ListeningQuestion `json:"listening_questions"`
	WritingPrompts     []WritingPrompt     `json:"writing_prompts"`
}

type ObjectiveAnswer struct {
	QuestionID int64  `json:"question_id"`
	Answer     string `json:"answer"`
}

type SubmitObjectiveRequest struct {
	Section QuestionSection   `json:"section"`
	Answers []ObjectiveAnswer `json:"answers"`
}

type SubmitObjectiveResponse struct {
	Section    QuestionSection `json:"section"`
	Score      int             `json:"score"`
	Total      int             `json:"total"`
	Percentage float64         `json:"percentage"`
}

// SubmitWritingRequest carries the candidate texts keyed to the prompt IDs
// served at test start.
type SubmitWritingRequest struct {
	Task1PromptID int64  `json:"task1_prompt_id"`
	Task1Text     string `json:"task1_text"`
	Task2PromptID int64  `json:"task2_prompt_id"`
	Task2Text     string `json:"task2_text"`
	EssayPromptID int64  `json:"essay_prompt_id"`
	EssayText     string `json:"essay_text"`
}

// SessionResult is the final session-level outcome.
type SessionResult struct {
	SessionID           string  `json:"session_id"`
	ReadingPercentage   float64 `json:"reading_percentage"`
	ListeningPercentage float64 `json:"listening_percentage"`
	WritingPercentage   float64 `json:"writing_percentage"`
	OverallPercentage   float64 `json:"overall_percentage"`
	CEFRLevel           string  `json:"cefr_level"`
	LevelDescription    string  `json:"level_description"`
}

type SurveyResponse struct {
	ID                     int64     `json:"id"`
	SessionID              string    `json:"session_id"`
	OverallExperience      int       `json:"overall_experience"`
	DifficultyRating       int       `json:"difficulty_rating"`
	WouldRecommend         bool      `json:"would_recommend"`
	Feedback               string    `json:"feedback,omitempty"`
	ImprovementSuggestions string    `json:"improvement_suggestions,omitempty"`
	AgeGroup               string    `json:"age_group,omitempty"`
	EnglishPurpose         string    `json:"english_purpose,omitempty"`
	OverallLevel           string    `json:"overall_level,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

type PlatformStatistics struct {
	TotalTests        int            `json:"total_tests"`
	AvgReading        float64        `json:"avg_reading"`
	AvgListening      float64        `json:"avg_listening"`
	AvgWriting        float64        `json:"avg_writing"`
	LevelDistribution map[string]int `json:"level_distribution"`
	TotalSurveys      int            `json:"total_surveys"`
	AvgExperience     float64        `json:"avg_experience"`
}
