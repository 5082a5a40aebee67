package writing

import (
	"fmt"
	"strings"

	"github.com/cefr-platform/backend/internal/models"
)

// EvalSystemPrompt frames the evaluator as a strict examiner on a fixed 0-9
// scale with explicit anchors, and mandates a JSON-only response.
func EvalSystemPrompt() string {
	return `You are a senior English language examiner with 20 years of experience assessing written English against CEFR proficiency levels. You grade strictly and consistently on a 0-9 band scale:

0 = empty, gibberish, or entirely off-topic — no assessable English
1 = a few recognizable words, no meaningful communication
2 = isolated phrases, message barely discernible
3 = very limited, frequent breakdowns obscure meaning
4 = limited but basic meaning comes through
5 = modest, handles familiar situations despite frequent errors
6 = competent, generally effective despite inaccuracies
7 = good command with occasional errors
8 = very good command, rare slips only
9 = expert, near-native written English

If a text does not address its task, score it 0 regardless of language quality and say so explicitly in the feedback.

You must respond with a single valid JSON object only. No markdown, no commentary outside the JSON.`
}

// BuildEvalPrompt covers all three texts of one submission in a single
// prompt, embedding the task instructions, each candidate text, and its
// locally computed word count.
func BuildEvalPrompt(sub models.Submission) string {
	var sb strings.Builder

	sb.WriteString("Assess the following three writing task responses from one candidate.\n\n")
	writeTaskSection(&sb, "TASK 1", sub.Task1)
	writeTaskSection(&sb, "TASK 2", sub.Task2)
	writeTaskSection(&sb, "ESSAY", sub.Essay)

	sb.WriteString(`Respond with this exact JSON structure:
{
  "task1": {
    "score": 6.5,
    "content": "...",
    "organization": "...",
    "language": "...",
    "accuracy": "..."
  },
  "task2": {
    "score": 6.0,
    "content": "...",
    "organization": "...",
    "language": "...",
    "accuracy": "..."
  },
  "essay": {
    "score": 6.5,
    "task_achievement": "...",
    "coherence_cohesion": "...",
    "lexical_resource": "...",
    "grammatical_range": "..."
  },
  "general_feedback": "..."
}

Requirements:
- Every "score" is a number between 0 and 9; half bands are allowed
- Score a response 0 if it is empty, gibberish, copied from the prompt, or does not address the task
- Keep each qualitative comment to 1-3 sentences addressed to the candidate`)

	return sb.String()
}

func writeTaskSection(sb *strings.Builder, label string, task models.WritingTask) {
	fmt.Fprintf(sb, "%s (%s, expected %d-%d words)\n", label, task.Kind, task.MinWords, task.MaxWords)
	fmt.Fprintf(sb, "Instructions: %s\n", task.Instructions)
	fmt.Fprintf(sb, "Candidate word count: %d\n", len(strings.Fields(task.Text)))
	sb.WriteString("Candidate response:\n")
	text := strings.TrimSpace(task.Text)
	if text == "" {
		text = "(empty)"
	}
	sb.WriteString(text)
	sb.WriteString("\n\n")
}
