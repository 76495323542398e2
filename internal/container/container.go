package container

import (
	"context"
	"time"

	"github.com/saulo-duarte/exam-portal/internal/attempt"
	"github.com/saulo-duarte/exam-portal/internal/auth"
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/draft"
	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"github.com/saulo-duarte/exam-portal/internal/exam"
	"github.com/saulo-duarte/exam-portal/internal/mailer"
	"github.com/saulo-duarte/exam-portal/internal/router"
	"github.com/saulo-duarte/exam-portal/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Config config.Config
	DB     *gorm.DB
	Events eventlog.Repository

	UserContainer    *user.UserContainer
	ExamContainer    *exam.ExamContainer
	AttemptContainer *attempt.AttemptContainer
	DraftContainer   *draft.DraftContainer
}

// New loads configuration from the environment, connects and migrates the
// database and wires every feature. It exits the process on failure.
func New() *Container {
	cfg := config.Load()
	config.Init(cfg)
	auth.Init()
	cipher := config.MustCipher(cfg.CryptoKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := config.Connect(ctx, cfg.DBDriver, cfg.DatabaseDSN); err != nil {
		config.Logger.WithError(err).Fatal("failed to connect to DB")
	}
	if err := Migrate(config.DB); err != nil {
		config.Logger.WithError(err).Fatal("failed to migrate DB")
	}

	return Build(cfg, config.DB, cipher, mailer.New(cfg.SMTP))
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&eventlog.Event{},
		&exam.Exam{},
		&exam.Question{},
		&exam.Option{},
		&attempt.Attempt{},
		&attempt.StudentAnswer{},
	)
}

// Build wires the feature containers over an already migrated database.
func Build(cfg config.Config, db *gorm.DB, cipher *config.Cipher, m mailer.Mailer) *Container {
	events := eventlog.NewRepository(db)

	userContainer := user.NewUserContainer(db, m, cipher)
	examContainer := exam.NewExamContainer(db, events)
	attemptContainer := attempt.NewAttemptContainer(db, examContainer.Repo, userContainer.Repo, events, m)
	draftContainer := draft.NewDraftContainer(context.Background(), cfg.GoogleAPIKey)

	return &Container{
		Config:           cfg,
		DB:               db,
		Events:           events,
		UserContainer:    userContainer,
		ExamContainer:    examContainer,
		AttemptContainer: attemptContainer,
		DraftContainer:   draftContainer,
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		CORSOrigins:    c.Config.CORSOrigins,
		UserHandler:    c.UserContainer.Handler,
		ExamHandler:    c.ExamContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		DraftHandler:   c.DraftContainer.Handler,
	}
}
