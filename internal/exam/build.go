package exam

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BuildExam turns a create request into a fully identified exam. Option ids
// are assigned before the correct index is resolved, so the reference is
// stored by id from the first write.
func BuildExam(creatorID uuid.UUID, dto CreateExamDTO, now time.Time) (*Exam, error) {
	ex := &Exam{
		ID:          uuid.New(),
		Title:       dto.Title,
		CreatedByID: creatorID,
		CreatedAt:   now,
		Questions:   make([]Question, 0, len(dto.Questions)),
	}

	for i, qs := range dto.Questions {
		if qs.CorrectIndex < 0 || qs.CorrectIndex >= len(qs.Options) {
			return nil, fmt.Errorf("%w: question %d: correctIndex %d out of range for %d options",
				ErrValidation, i, qs.CorrectIndex, len(qs.Options))
		}

		q := Question{
			ID:       uuid.New(),
			ExamID:   ex.ID,
			Text:     qs.Text,
			Marks:    qs.Marks,
			Position: i,
			Options:  make([]Option, 0, len(qs.Options)),
		}
		for j, text := range qs.Options {
			q.Options = append(q.Options, Option{
				ID:         uuid.New(),
				QuestionID: q.ID,
				Text:       text,
				Position:   j,
			})
		}

		correct := q.Options[qs.CorrectIndex].ID
		q.CorrectOptionID = &correct
		ex.Questions = append(ex.Questions, q)
	}
	return ex, nil
}
