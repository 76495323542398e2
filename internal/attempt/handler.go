package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/auth"
	"github.com/saulo-duarte/exam-portal/internal/config"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	callerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid user id in token", http.StatusBadRequest)
		return
	}

	studentID, err := uuid.Parse(r.URL.Query().Get("studentId"))
	if err != nil {
		http.Error(w, "invalid studentId", http.StatusBadRequest)
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to submit exam")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		config.ValidationError(w, err)
		return
	}

	resp, err := h.service.Submit(r.Context(), callerID, studentID, dto)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ExamResults(w http.ResponseWriter, r *http.Request) {
	examID, err := uuid.Parse(chi.URLParam(r, "examId"))
	if err != nil {
		http.Error(w, "invalid examId", http.StatusBadRequest)
		return
	}

	results, err := h.service.ExamResults(r.Context(), examID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) StudentResults(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		http.Error(w, "invalid studentId", http.StatusBadRequest)
		return
	}

	results, err := h.service.StudentResults(r.Context(), studentID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrExamNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
