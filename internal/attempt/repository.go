package attempt

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(ctx context.Context, a *Attempt) error
	ListByExam(ctx context.Context, examID uuid.UUID) ([]*Attempt, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*Attempt, error)
	WithTx(tx *gorm.DB) AttemptRepository
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(ctx context.Context, a *Attempt) error {
	return r.db.WithContext(ctx).Omit("Student", "Exam").Create(a).Error
}

func (r *attemptRepository) ListByExam(ctx context.Context, examID uuid.UUID) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Where("exam_id = ?", examID).
		Order("submitted_at ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.WithContext(ctx).
		Preload("Exam").
		Preload("Exam.Questions").
		Where("student_id = ?", studentID).
		Order("submitted_at ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
