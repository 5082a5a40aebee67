package surveys

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cefr-platform/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req SaveSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.SessionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "session_id is required"})
		return
	}
	if req.OverallExperience < 1 || req.OverallExperience > 5 ||
		req.DifficultyRating < 1 || req.DifficultyRating > 5 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "ratings must be between 1 and 5"})
		return
	}

	survey, err := h.store.SaveSurvey(req)
	if err != nil {
		log.Printf("WARN: save survey failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save survey"})
		return
	}
	writeJSON(w, http.StatusCreated, survey)
}

func (h *Handler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.store.ListSurveys()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list surveys"})
		return
	}
	if surveys == nil {
		surveys = []models.SurveyResponse{}
	}
	writeJSON(w, http.StatusOK, surveys)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStatistics()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to compute statistics"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
