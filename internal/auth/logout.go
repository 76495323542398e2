package auth

import (
	"net/http"

	"github.com/saulo-duarte/exam-portal/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Logout only acknowledges the request: session tokens are not tracked
// server-side and stay valid until they expire.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	config.WithContext(r.Context()).Info("Logout requested")

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
