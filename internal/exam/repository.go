package exam

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExamRepository interface {
	Create(ctx context.Context, ex *Exam) error
	GetByID(ctx context.Context, id uuid.UUID) (*Exam, error)
	List(ctx context.Context) ([]*Exam, error)
	ApplyPlan(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *gorm.DB) ExamRepository
}

type examRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) WithTx(tx *gorm.DB) ExamRepository {
	return &examRepository{db: tx}
}

func (r *examRepository) withHierarchy(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func (r *examRepository) Create(ctx context.Context, ex *Exam) error {
	return r.db.WithContext(ctx).Omit("CreatedBy").Create(ex).Error
}

func (r *examRepository) GetByID(ctx context.Context, id uuid.UUID) (*Exam, error) {
	var ex Exam
	if err := r.withHierarchy(ctx).First(&ex, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ex, nil
}

func (r *examRepository) List(ctx context.Context) ([]*Exam, error) {
	var exams []*Exam
	if err := r.withHierarchy(ctx).
		Order("created_at DESC").
		Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

// ApplyPlan writes a reconciled exam. Callers run it inside a transaction.
func (r *examRepository) ApplyPlan(ctx context.Context, plan *Plan) error {
	db := r.db.WithContext(ctx)
	ex := plan.Exam

	if err := db.Model(&Exam{}).Where("id = ?", ex.ID).Update("title", ex.Title).Error; err != nil {
		return fmt.Errorf("update exam: %w", err)
	}

	if len(plan.RemovedQuestionIDs) > 0 {
		if err := db.Where("question_id IN ?", plan.RemovedQuestionIDs).Delete(&Option{}).Error; err != nil {
			return fmt.Errorf("delete options of removed questions: %w", err)
		}
		if err := db.Where("id IN ?", plan.RemovedQuestionIDs).Delete(&Question{}).Error; err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
	}
	if len(plan.RemovedOptionIDs) > 0 {
		if err := db.Where("id IN ?", plan.RemovedOptionIDs).Delete(&Option{}).Error; err != nil {
			return fmt.Errorf("delete options: %w", err)
		}
	}

	for i := range ex.Questions {
		q := &ex.Questions[i]
		if err := r.saveQuestion(db, plan, q); err != nil {
			return err
		}
		for j := range q.Options {
			if err := r.saveOption(db, plan, &q.Options[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *examRepository) saveQuestion(db *gorm.DB, plan *Plan, q *Question) error {
	if plan.IsNew(q.ID) {
		if err := db.Omit(clause.Associations).Create(q).Error; err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		return nil
	}

	var correct interface{}
	if q.CorrectOptionID != nil {
		correct = *q.CorrectOptionID
	}
	err := db.Model(&Question{}).Where("id = ?", q.ID).Updates(map[string]interface{}{
		"text":              q.Text,
		"marks":             q.Marks,
		"correct_option_id": correct,
		"position":          q.Position,
	}).Error
	if err != nil {
		return fmt.Errorf("update question %s: %w", q.ID, err)
	}
	return nil
}

func (r *examRepository) saveOption(db *gorm.DB, plan *Plan, o *Option) error {
	if plan.IsNew(o.ID) {
		if err := db.Create(o).Error; err != nil {
			return fmt.Errorf("create option: %w", err)
		}
		return nil
	}

	err := db.Model(&Option{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"text":     o.Text,
		"position": o.Position,
	}).Error
	if err != nil {
		return fmt.Errorf("update option %s: %w", o.ID, err)
	}
	return nil
}

// Delete removes the exam with its questions and options. Rows that only
// reference the exam (attempts) go through their own ON DELETE CASCADE.
func (r *examRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)

	questionIDs := db.Model(&Question{}).Select("id").Where("exam_id = ?", id)
	if err := db.Where("question_id IN (?)", questionIDs).Delete(&Option{}).Error; err != nil {
		return fmt.Errorf("delete options: %w", err)
	}
	if err := db.Where("exam_id = ?", id).Delete(&Question{}).Error; err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	return db.Delete(&Exam{}, "id = ?", id).Error
}
