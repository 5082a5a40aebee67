package content

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cefr-platform/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

var validAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// ── Reading questions ───────────────────────────────────

func (h *Handler) AddReadingQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.AddReadingQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Passage == "" || req.Question == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "passage and question are required"})
		return
	}
	if !validAnswers[req.CorrectAnswer] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "correct_answer must be A, B, C, or D"})
		return
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be a CEFR level (A1-C2)"})
		return
	}

	q, err := h.store.AddReadingQuestion(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add reading question"})
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) ListReadingQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListReadingQuestions()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list reading questions"})
		return
	}
	if questions == nil {
		questions = []models.ReadingQuestion{}
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) DeleteReadingQuestion(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.DeleteReadingQuestion)
}

// ── Listening questions ─────────────────────────────────

func (h *Handler) AddListeningQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.AddListeningQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.AudioURL == "" || req.Question == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "audio_url and question are required"})
		return
	}
	if !validAnswers[req.CorrectAnswer] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "correct_answer must be A, B, C, or D"})
		return
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be a CEFR level (A1-C2)"})
		return
	}

	q, err := h.store.AddListeningQuestion(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add listening question"})
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) ListListeningQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListListeningQuestions()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list listening questions"})
		return
	}
	if questions == nil {
		questions = []models.ListeningQuestion{}
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) DeleteListeningQuestion(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.DeleteListeningQuestion)
}

// ── Writing prompts ─────────────────────────────────────

func (h *Handler) AddWritingPrompt(w http.ResponseWriter, r *http.Request) {
	var req models.AddWritingPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.PromptText == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "prompt_text is required"})
		return
	}
	if !models.ValidTaskKinds[req.TaskKind] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "task_kind must be 'transactional', 'review', or 'essay'"})
		return
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be a CEFR level (A1-C2)"})
		return
	}
	if req.MinWords < 0 || req.MaxWords < 0 || (req.MaxWords > 0 && req.MaxWords < req.MinWords) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid word range"})
		return
	}

	p, err := h.store.AddWritingPrompt(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add writing prompt"})
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) ListWritingPrompts(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.store.ListWritingPrompts()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list writing prompts"})
		return
	}
	if prompts == nil {
		prompts = []models.WritingPrompt{}
	}
	writeJSON(w, http.StatusOK, prompts)
}

func (h *Handler) DeleteWritingPrompt(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.DeleteWritingPrompt)
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, del func(int64) error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid ID"})
		return
	}
	if err := del(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Delete failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
