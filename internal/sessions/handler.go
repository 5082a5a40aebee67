package sessions

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cefr-platform/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) StartTest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.StartTest(r.Context())
	if err != nil {
		log.Printf("WARN: start test failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to start test"})
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) SubmitObjective(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	var req models.SubmitObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Section != models.SectionReading && req.Section != models.SectionListening {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "section must be 'reading' or 'listening'"})
		return
	}
	if len(req.Answers) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "answers are required"})
		return
	}

	resp, err := h.service.SubmitObjective(r.Context(), sessionID, req)
	if err != nil {
		h.writeServiceError(w, sessionID, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitWriting(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	var req models.SubmitWritingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Task1PromptID == 0 || req.Task2PromptID == 0 || req.EssayPromptID == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "all three prompt IDs are required"})
		return
	}

	evaluation, err := h.service.SubmitWriting(r.Context(), sessionID, req)
	if err != nil {
		h.writeServiceError(w, sessionID, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluation)
}

func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	result, err := h.service.CompleteSession(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, sessionID, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	result, err := h.service.GetResult(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, sessionID, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, ErrSessionCompleted):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Session already completed"})
	case errors.Is(err, ErrSectionScored):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Section already submitted"})
	default:
		log.Printf("WARN: session %s request failed: %v", sessionID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Request failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
