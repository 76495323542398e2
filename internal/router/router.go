package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/exam-portal/docs"
	"github.com/saulo-duarte/exam-portal/internal/attempt"
	"github.com/saulo-duarte/exam-portal/internal/auth"
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/draft"
	"github.com/saulo-duarte/exam-portal/internal/exam"
	"github.com/saulo-duarte/exam-portal/internal/middlewares"
	"github.com/saulo-duarte/exam-portal/internal/user"
)

const requestTimeout = 30 * time.Second

type RouterConfig struct {
	CORSOrigins []string

	UserHandler    *user.Handler
	ExamHandler    *exam.Handler
	AttemptHandler *attempt.Handler
	DraftHandler   *draft.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	user.Routes(r, cfg.UserHandler)
	r.Post("/logout", auth.NewHandler().Logout)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/exam", func(r chi.Router) {
			exam.Routes(r, cfg.ExamHandler)
			r.Get("/results/{examId}", cfg.AttemptHandler.ExamResults)
			r.Mount("/drafts", draft.Routes(cfg.DraftHandler))
		})
		r.Mount("/studentexam", attempt.Routes(cfg.AttemptHandler))
	})
	return r
}
