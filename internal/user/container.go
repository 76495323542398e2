package user

import (
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/mailer"
	"gorm.io/gorm"
)

type UserContainer struct {
	Handler *Handler
	Service UserService
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, m mailer.Mailer, cipher *config.Cipher, opts ...Option) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, m, cipher, opts...)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
