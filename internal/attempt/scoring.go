package attempt

import (
	"math"

	"github.com/saulo-duarte/exam-portal/internal/exam"
)

// Score grades answers against the exam as it is now. Answers to questions
// the exam does not have are dropped; every other answer is recorded and
// earns the question's marks when it picks the correct option.
func Score(ex *exam.Exam, answers []AnswerDTO) (int, []StudentAnswer) {
	questions := ex.QuestionIndex()

	score := 0
	recorded := make([]StudentAnswer, 0, len(answers))
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			continue
		}
		recorded = append(recorded, StudentAnswer{
			QuestionID:       a.QuestionID,
			SelectedOptionID: a.SelectedOptionID,
		})
		if q.CorrectOptionID != nil && *q.CorrectOptionID == a.SelectedOptionID {
			score += q.Marks
		}
	}
	return score, recorded
}

// Percentage rounds score/total to a whole percent, halves to even. A zero
// total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(score) * 100 / float64(total)))
}
