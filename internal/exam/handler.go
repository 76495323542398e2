package exam

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
	service ExamService
}

func NewHandler(s ExamService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	callerID, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	var dto CreateExamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to create exam")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		config.ValidationError(w, err)
		return
	}

	resp, err := h.service.CreateExam(r.Context(), callerID, dto)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListExams(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetExam(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	callerID, ok := callerFromContext(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateExamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to update exam")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(dto); err != nil {
		config.ValidationError(w, err)
		return
	}

	resp, err := h.service.UpdateExam(r.Context(), callerID, id, dto)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteExam(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "exam deleted",
	})
}

func callerFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrExamNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
