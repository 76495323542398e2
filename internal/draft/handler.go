package draft

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/exam-portal/internal/auth"
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/user"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateDrafts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !user.Role(claims.Role).CanAuthor() {
		log.WithField("role", claims.Role).Warn("Drafts requested by a non-author")
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(req); err != nil {
		config.ValidationError(w, err)
		return
	}

	drafts, err := h.service.GenerateDrafts(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		log.WithError(err).Error("Failed to generate drafts")
		http.Error(w, "failed to generate drafts", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusOK, drafts)
}
