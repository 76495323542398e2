package exam

import "github.com/go-chi/chi/v5"

// Routes registers the authoring endpoints on r, which is expected to be
// mounted under /exam behind the auth middleware.
func Routes(r chi.Router, h *Handler) {
	r.Post("/create", h.CreateExam)
	r.Get("/list", h.ListExams)
	r.Get("/{id}", h.GetExam)
	r.Put("/update/{id}", h.UpdateExam)
	r.Delete("/delete/{id}", h.DeleteExam)
}
