package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/exam"
	"github.com/saulo-duarte/exam-portal/internal/user"
	"gorm.io/gorm"
)

type Attempt struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Student     user.User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	ExamID      uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_id"`
	Exam        exam.Exam `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"-"`
	Score       int       `gorm:"not null" json:"score"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`

	Answers []StudentAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (Attempt) TableName() string {
	return "student_exams"
}

// StudentAnswer keeps the question id as submitted; it has no foreign key so
// the answer outlives later edits of the exam.
type StudentAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID        uuid.UUID `gorm:"type:uuid;not null;index" json:"attempt_id"`
	QuestionID       uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	SelectedOptionID uuid.UUID `gorm:"type:uuid;not null" json:"selected_option_id"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a *StudentAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
