package exam

import (
	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"gorm.io/gorm"
)

type ExamContainer struct {
	Handler *Handler
	Service ExamService
	Repo    ExamRepository
}

func NewExamContainer(db *gorm.DB, events eventlog.Repository) *ExamContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, events)
	handler := NewHandler(service)

	return &ExamContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
