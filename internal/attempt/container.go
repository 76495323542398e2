package attempt

import (
	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"github.com/saulo-duarte/exam-portal/internal/exam"
	"github.com/saulo-duarte/exam-portal/internal/mailer"
	"github.com/saulo-duarte/exam-portal/internal/user"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Handler *Handler
	Service AttemptService
}

func NewAttemptContainer(db *gorm.DB, exams exam.ExamRepository, users user.UserRepository, events eventlog.Repository, m mailer.Mailer, opts ...Option) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, exams, users, events, m, opts...)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
	}
}
