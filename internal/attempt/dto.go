package attempt

import (
	"time"

	"github.com/google/uuid"
)

type AnswerDTO struct {
	QuestionID       uuid.UUID `json:"questionId" validate:"required"`
	SelectedOptionID uuid.UUID `json:"selectedOptionId" validate:"required"`
}

type SubmitDTO struct {
	ExamID  uuid.UUID   `json:"examId" validate:"required"`
	Answers []AnswerDTO `json:"answers" validate:"dive"`
}

type SubmitResponse struct {
	ID    uuid.UUID `json:"id"`
	Score int       `json:"score"`
	Total int       `json:"total"`
}

type ExamResultResponse struct {
	StudentID   uuid.UUID `json:"studentId"`
	StudentName string    `json:"studentName"`
	Score       int       `json:"score"`
}

type StudentResultResponse struct {
	ExamID      uuid.UUID `json:"examId"`
	Title       string    `json:"title"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Percentage  int       `json:"percentage"`
	SubmittedAt time.Time `json:"submittedAt"`
}
