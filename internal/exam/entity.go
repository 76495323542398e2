package exam

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/user"
	"gorm.io/gorm"
)

type Exam struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   user.User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []Question `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ExamID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"exam_id"`
	Text            string     `gorm:"type:text;not null" json:"text"`
	Marks           int        `gorm:"not null" json:"marks"`
	CorrectOptionID *uuid.UUID `gorm:"type:uuid" json:"correct_option_id"`
	Position        int        `gorm:"not null;default:0" json:"position"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Position   int       `gorm:"not null;default:0" json:"position"`
}

func (e *Exam) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TotalMarks is the sum of marks over the exam's current questions.
func (e *Exam) TotalMarks() int {
	total := 0
	for _, q := range e.Questions {
		total += q.Marks
	}
	return total
}

// QuestionIndex maps question ids to the exam's questions.
func (e *Exam) QuestionIndex() map[uuid.UUID]*Question {
	idx := make(map[uuid.UUID]*Question, len(e.Questions))
	for i := range e.Questions {
		idx[e.Questions[i].ID] = &e.Questions[i]
	}
	return idx
}
