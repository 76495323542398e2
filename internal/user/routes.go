package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/exam-portal/internal/auth"
)

// Routes registers the login flow and the authenticated /me lookup on r.
func Routes(r chi.Router, h *Handler) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/verify-otp", h.VerifyOTP)

	r.With(auth.AuthMiddleware).Get("/me", h.GetUser)
}
