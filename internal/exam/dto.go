package exam

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuestionDTO struct {
	Text         string   `json:"text" validate:"required"`
	Marks        int      `json:"marks" validate:"min=1"`
	Options      []string `json:"options" validate:"min=1,dive,required"`
	CorrectIndex int      `json:"correctIndex"`
}

type CreateExamDTO struct {
	Title     string              `json:"title" validate:"required,max=200"`
	Questions []CreateQuestionDTO `json:"questions" validate:"dive"`
}

type UpdateOptionDTO struct {
	ID   *uuid.UUID `json:"id"`
	Text string     `json:"text" validate:"required"`
}

type UpdateQuestionDTO struct {
	ID           *uuid.UUID        `json:"id"`
	Text         string            `json:"text" validate:"required"`
	Marks        int               `json:"marks" validate:"min=1"`
	CorrectIndex int               `json:"correctIndex"`
	Options      []UpdateOptionDTO `json:"options" validate:"dive"`
}

type UpdateExamDTO struct {
	Title     string              `json:"title" validate:"required,max=200"`
	Questions []UpdateQuestionDTO `json:"questions" validate:"dive"`
}

type OptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type QuestionResponse struct {
	ID              uuid.UUID        `json:"id"`
	Text            string           `json:"text"`
	Marks           int              `json:"marks"`
	CorrectOptionID *uuid.UUID       `json:"correctOptionId"`
	Options         []OptionResponse `json:"options"`
}

type ExamResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	CreatedByID uuid.UUID          `json:"createdById"`
	CreatedAt   time.Time          `json:"createdAt"`
	Questions   []QuestionResponse `json:"questions"`
}

func ToResponse(e *Exam) *ExamResponse {
	resp := &ExamResponse{
		ID:          e.ID,
		Title:       e.Title,
		CreatedByID: e.CreatedByID,
		CreatedAt:   e.CreatedAt,
		Questions:   make([]QuestionResponse, 0, len(e.Questions)),
	}
	for _, q := range e.Questions {
		qr := QuestionResponse{
			ID:              q.ID,
			Text:            q.Text,
			Marks:           q.Marks,
			CorrectOptionID: q.CorrectOptionID,
			Options:         make([]OptionResponse, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			qr.Options = append(qr.Options, OptionResponse{ID: o.ID, Text: o.Text})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}
