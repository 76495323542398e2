package exam

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrExamNotFound = errors.New("exam not found")
	ErrForbidden    = errors.New("only the exam creator may change it")
	ErrValidation   = errors.New("validation error")
)

type ExamService interface {
	CreateExam(ctx context.Context, creatorID uuid.UUID, dto CreateExamDTO) (*ExamResponse, error)
	ListExams(ctx context.Context) ([]*ExamResponse, error)
	GetExam(ctx context.Context, id uuid.UUID) (*ExamResponse, error)
	UpdateExam(ctx context.Context, callerID, id uuid.UUID, dto UpdateExamDTO) (*ExamResponse, error)
	DeleteExam(ctx context.Context, id uuid.UUID) error
}

type examService struct {
	db     *gorm.DB
	repo   ExamRepository
	events eventlog.Repository
	now    func() time.Time
}

func NewService(db *gorm.DB, repo ExamRepository, events eventlog.Repository) ExamService {
	return &examService{
		db:     db,
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func (s *examService) CreateExam(ctx context.Context, creatorID uuid.UUID, dto CreateExamDTO) (*ExamResponse, error) {
	log := config.WithContext(ctx)

	ex, err := BuildExam(creatorID, dto, s.now())
	if err != nil {
		log.WithError(err).Warn("Rejected exam")
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, ex); err != nil {
			return err
		}
		return s.events.WithTx(tx).Append(ctx, eventlog.ExamCreated, ex.ID.String(), map[string]interface{}{
			"title":     ex.Title,
			"createdBy": creatorID,
			"questions": len(ex.Questions),
		})
	})
	if err != nil {
		log.WithError(err).Error("Failed to create exam")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"exam_id":   ex.ID,
		"questions": len(ex.Questions),
	}).Info("Exam created")
	return ToResponse(ex), nil
}

func (s *examService) ListExams(ctx context.Context) ([]*ExamResponse, error) {
	exams, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list exams")
		return nil, err
	}

	responses := make([]*ExamResponse, 0, len(exams))
	for _, ex := range exams {
		responses = append(responses, ToResponse(ex))
	}
	return responses, nil
}

func (s *examService) GetExam(ctx context.Context, id uuid.UUID) (*ExamResponse, error) {
	ex, err := s.repo.GetByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load exam")
		return nil, err
	}
	if ex == nil {
		return nil, ErrExamNotFound
	}
	return ToResponse(ex), nil
}

func (s *examService) UpdateExam(ctx context.Context, callerID, id uuid.UUID, dto UpdateExamDTO) (*ExamResponse, error) {
	log := config.WithContext(ctx).WithField("exam_id", id)

	var updated *Exam
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		ex, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ex == nil {
			return ErrExamNotFound
		}
		if ex.CreatedByID != callerID {
			return ErrForbidden
		}

		plan := Reconcile(ex, dto)
		if err := repo.ApplyPlan(ctx, plan); err != nil {
			return err
		}

		if err := s.events.WithTx(tx).Append(ctx, eventlog.ExamUpdated, id.String(), map[string]interface{}{
			"title":            ex.Title,
			"removedQuestions": len(plan.RemovedQuestionIDs),
			"removedOptions":   len(plan.RemovedOptionIDs),
		}); err != nil {
			return err
		}

		updated, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrExamNotFound), errors.Is(err, ErrForbidden):
			log.WithError(err).Warn("Exam update refused")
		default:
			log.WithError(err).Error("Failed to update exam")
		}
		return nil, err
	}

	log.Info("Exam updated")
	return ToResponse(updated), nil
}

func (s *examService) DeleteExam(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx).WithField("exam_id", id)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		ex, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ex == nil {
			return ErrExamNotFound
		}

		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		return s.events.WithTx(tx).Append(ctx, eventlog.ExamDeleted, id.String(), map[string]interface{}{
			"title": ex.Title,
		})
	})
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			log.Warn("Exam not found for delete")
		} else {
			log.WithError(err).Error("Failed to delete exam")
		}
		return err
	}

	log.Info("Exam deleted")
	return nil
}
