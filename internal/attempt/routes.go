package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/submit", h.Submit)
	r.Get("/results/{studentId}", h.StudentResults)

	return r
}
