package models

import "time"

type Difficulty string

const (
	DifficultyA1 Difficulty = "A1"
	DifficultyA2 Difficulty = "A2"
	DifficultyB1 Difficulty = "B1"
	DifficultyB2 Difficulty = "B2"
	DifficultyC1 Difficulty = "C1"
	DifficultyC2 Difficulty = "C2"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyA1: true,
	DifficultyA2: true,
	DifficultyB1: true,
	DifficultyB2: true,
	DifficultyC1: true,
	DifficultyC2: true,
}

type ReadingQuestion struct {
	ID            int64      `json:"id"`
	Passage       string     `json:"passage"`
	Question      string     `json:"question"`
	OptionA       string     `json:"option_a"`
	OptionB       string     `json:"option_b"`
	OptionC       string     `json:"option_c"`
	OptionD       string     `json:"option_d"`
	CorrectAnswer string     `json:"correct_answer,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ListeningQuestion struct {
	ID            int64      `json:"id"`
	AudioURL      string     `json:"audio_url"`
	Transcript    string     `json:"transcript,omitempty"`
	Question      string     `json:"question"`
	OptionA       string     `json:"option_a"`
	OptionB       string     `json:"option_b"`
	OptionC       string     `json:"option_c"`
	OptionD       string     `json:"option_d"`
	CorrectAnswer string     `json:"correct_answer,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// WritingPrompt is one stored writing task definition. TaskKind determines
// which pipeline thresholds apply (paragraph checks run only for essays).
type WritingPrompt struct {
	ID         int64      `json:"id"`
	PromptText string     `json:"prompt_text"`
	TaskKind   TaskKind   `json:"task_kind"`
	MinWords   int        `json:"min_words"`
	MaxWords   int        `json:"max_words"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AddReadingQuestionRequest struct {
	Passage       string     `json:"passage"`
	Question      string     `json:"question"`
	OptionA       string     `json:"option_a"`
	OptionB       string     `json:"option_b"`
	OptionC       string     `json:"option_c"`
	OptionD       string     `json:"option_d"`
	CorrectAnswer string     `json:"correct_answer"`
	Difficulty    Difficulty `json:"difficulty"`
}

type AddListeningQuestionRequest struct {
	AudioURL      string     `json:"audio_url"`
	Transcript    string     `json:"transcript"`
	Question      string     `json:"question"`
	OptionA       string     `json:"option_a"`
	OptionB       string     `json:"option_b"`
	OptionC       string     `json:"option_c"`
	OptionD       string     `json:"option_d"`
	CorrectAnswer string     `json:"correct_answer"`
	Difficulty    Difficulty `json:"difficulty"`
}

type AddWritingPromptRequest struct {
	PromptText string     `json:"prompt_text"`
	TaskKind   TaskKind   `json:"task_kind"`
	MinWords   int        `json:"min_words"`
	MaxWords   int        `json:"max_words"`
	Difficulty Difficulty `json:"difficulty"`
}
