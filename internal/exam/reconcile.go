package exam

import "github.com/google/uuid"

// Plan is the outcome of reconciling an update request against a loaded
// exam: the exam in its desired state plus the rows that must go.
type Plan struct {
	Exam               *Exam
	RemovedQuestionIDs []uuid.UUID
	RemovedOptionIDs   []uuid.UUID

	created map[uuid.UUID]bool
}

// IsNew reports whether the question or option with id was created by the
// reconciliation and has no row yet.
func (p *Plan) IsNew(id uuid.UUID) bool {
	return p.created[id]
}

// Reconcile merges dto into ex in place. Specs without an id create rows,
// specs whose id is unknown are skipped, and anything the request no longer
// names is scheduled for removal. Surviving rows keep their order and new
// ones are appended after them. A correctIndex outside the reconciled
// options leaves the previous correct option untouched.
func Reconcile(ex *Exam, dto UpdateExamDTO) *Plan {
	plan := &Plan{Exam: ex, created: make(map[uuid.UUID]bool)}

	ex.Title = dto.Title

	wanted := make(map[uuid.UUID]bool, len(dto.Questions))
	for _, qs := range dto.Questions {
		if qs.ID != nil {
			wanted[*qs.ID] = true
		}
	}

	kept := make([]*Question, 0, len(ex.Questions))
	byID := make(map[uuid.UUID]*Question, len(ex.Questions))
	for i := range ex.Questions {
		q := &ex.Questions[i]
		if !wanted[q.ID] {
			plan.RemovedQuestionIDs = append(plan.RemovedQuestionIDs, q.ID)
			continue
		}
		kept = append(kept, q)
		byID[q.ID] = q
	}

	var added []*Question
	for _, qs := range dto.Questions {
		var q *Question
		if qs.ID != nil {
			q = byID[*qs.ID]
			if q == nil {
				continue
			}
			q.Text = qs.Text
		} else {
			q = &Question{ID: uuid.New(), ExamID: ex.ID, Text: qs.Text}
			plan.created[q.ID] = true
			added = append(added, q)
		}

		plan.reconcileOptions(q, qs.Options)

		if qs.CorrectIndex >= 0 && qs.CorrectIndex < len(q.Options) {
			correct := q.Options[qs.CorrectIndex].ID
			q.CorrectOptionID = &correct
		}
		q.Marks = qs.Marks
	}

	questions := make([]Question, 0, len(kept)+len(added))
	for _, q := range kept {
		questions = append(questions, *q)
	}
	for _, q := range added {
		questions = append(questions, *q)
	}
	for i := range questions {
		questions[i].Position = i
	}
	ex.Questions = questions

	return plan
}

func (p *Plan) reconcileOptions(q *Question, specs []UpdateOptionDTO) {
	wanted := make(map[uuid.UUID]bool, len(specs))
	for _, want := range specs {
		if want.ID != nil {
			wanted[*want.ID] = true
		}
	}

	options := make([]Option, 0, len(specs))
	index := make(map[uuid.UUID]int, len(q.Options))
	for _, o := range q.Options {
		if !wanted[o.ID] {
			p.RemovedOptionIDs = append(p.RemovedOptionIDs, o.ID)
			continue
		}
		index[o.ID] = len(options)
		options = append(options, o)
	}

	for _, want := range specs {
		if want.ID != nil {
			if i, ok := index[*want.ID]; ok {
				options[i].Text = want.Text
				continue
			}
		}
		o := Option{ID: uuid.New(), QuestionID: q.ID, Text: want.Text}
		p.created[o.ID] = true
		options = append(options, o)
	}

	for i := range options {
		options[i].Position = i
	}
	q.Options = options
}
