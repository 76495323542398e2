package exam_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"github.com/saulo-duarte/exam-portal/internal/exam"
	"github.com/saulo-duarte/exam-portal/internal/testutil"
	"github.com/saulo-duarte/exam-portal/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db      *gorm.DB
	service exam.ExamService
	events  eventlog.Repository
	teacher uuid.UUID
	other   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t, &user.User{}, &eventlog.Event{}, &exam.Exam{}, &exam.Question{}, &exam.Option{})

	f := &fixture{db: db, events: eventlog.NewRepository(db)}
	f.teacher = seedUser(t, db, "teacher@example.com", user.RoleTeacher)
	f.other = seedUser(t, db, "other@example.com", user.RoleTeacher)
	f.service = exam.NewService(db, exam.NewRepository(db), f.events)
	return f
}

func seedUser(t *testing.T, db *gorm.DB, email string, role user.Role) uuid.UUID {
	t.Helper()
	u := &user.User{Username: email, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func (f *fixture) rows(t *testing.T) (exams, questions, options int64) {
	return testutil.Count(t, f.db, &exam.Exam{}),
		testutil.Count(t, f.db, &exam.Question{}),
		testutil.Count(t, f.db, &exam.Option{})
}

func createPhysics(t *testing.T, f *fixture) *exam.ExamResponse {
	t.Helper()
	resp, err := f.service.CreateExam(context.Background(), f.teacher, exam.CreateExamDTO{
		Title: "Physics",
		Questions: []exam.CreateQuestionDTO{
			{Text: "Unit of force", Marks: 2, Options: []string{"joule", "newton", "watt"}, CorrectIndex: 1},
			{Text: "Speed of light", Marks: 3, Options: []string{"3e8 m/s", "340 m/s"}, CorrectIndex: 0},
		},
	})
	require.NoError(t, err)
	return resp
}

// snapshot turns a projection back into an update request that names every
// existing row.
func snapshot(resp *exam.ExamResponse) exam.UpdateExamDTO {
	dto := exam.UpdateExamDTO{Title: resp.Title}
	for _, q := range resp.Questions {
		spec := exam.UpdateQuestionDTO{ID: ptr(q.ID), Text: q.Text, Marks: q.Marks, CorrectIndex: -1}
		for i, o := range q.Options {
			if q.CorrectOptionID != nil && *q.CorrectOptionID == o.ID {
				spec.CorrectIndex = i
			}
			spec.Options = append(spec.Options, exam.UpdateOptionDTO{ID: ptr(o.ID), Text: o.Text})
		}
		dto.Questions = append(dto.Questions, spec)
	}
	return dto
}

func TestCreateExam(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsHierarchy", func(t *testing.T) {
		f := newFixture(t)
		created := createPhysics(t, f)

		exams, questions, options := f.rows(t)
		assert.Equal(t, [3]int64{1, 2, 5}, [3]int64{exams, questions, options})

		got, err := f.service.GetExam(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, f.teacher, got.CreatedByID)
		require.Len(t, got.Questions, 2)
		assert.Equal(t, "Unit of force", got.Questions[0].Text)
		assert.Equal(t, got.Questions[0].Options[1].ID, *got.Questions[0].CorrectOptionID)
		assert.Equal(t, "newton", got.Questions[0].Options[1].Text)
		assert.Equal(t, got.Questions[1].Options[0].ID, *got.Questions[1].CorrectOptionID)

		events, err := f.events.ListByKey(ctx, created.ID.String())
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, eventlog.ExamCreated, events[0].Type)
	})

	t.Run("OutOfRangeCorrectIndexWritesNothing", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateExam(ctx, f.teacher, exam.CreateExamDTO{
			Title:     "Broken",
			Questions: []exam.CreateQuestionDTO{{Text: "q", Marks: 1, Options: []string{"a"}, CorrectIndex: 1}},
		})
		assert.ErrorIs(t, err, exam.ErrValidation)

		exams, questions, options := f.rows(t)
		assert.Zero(t, exams+questions+options)
	})
}

func TestListExams(t *testing.T) {
	f := newFixture(t)
	createPhysics(t, f)
	createPhysics(t, f)

	list, err := f.service.ListExams(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, ex := range list {
		assert.Len(t, ex.Questions, 2)
		assert.NotNil(t, ex.Questions[0].CorrectOptionID)
	}
}

func TestUpdateExam(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.UpdateExam(ctx, f.teacher, uuid.New(), exam.UpdateExamDTO{Title: "x"})
		assert.ErrorIs(t, err, exam.ErrExamNotFound)
	})

	t.Run("NonCreatorIsForbiddenAndNothingChanges", func(t *testing.T) {
		f := newFixture(t)
		created := createPhysics(t, f)
		e0, q0, o0 := f.rows(t)

		_, err := f.service.UpdateExam(ctx, f.other, created.ID, exam.UpdateExamDTO{Title: "Hijacked"})
		assert.ErrorIs(t, err, exam.ErrForbidden)

		e1, q1, o1 := f.rows(t)
		assert.Equal(t, [3]int64{e0, q0, o0}, [3]int64{e1, q1, o1})

		got, err := f.service.GetExam(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Physics", got.Title)

		events, err := f.events.ListByKey(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("ReconcilesAndPersists", func(t *testing.T) {
		f := newFixture(t)
		created := createPhysics(t, f)
		force := created.Questions[0]

		updated, err := f.service.UpdateExam(ctx, f.teacher, created.ID, exam.UpdateExamDTO{
			Title: "Physics 101",
			Questions: []exam.UpdateQuestionDTO{
				{
					ID:           ptr(force.ID),
					Text:         "SI unit of force",
					Marks:        4,
					CorrectIndex: 2,
					Options: []exam.UpdateOptionDTO{
						{ID: ptr(force.Options[1].ID), Text: "newton"},
						{Text: "dyne"},
						{Text: "pascal"},
					},
				},
				{Text: "g on Earth", Marks: 1, CorrectIndex: 0, Options: []exam.UpdateOptionDTO{{Text: "9.8 m/s2"}, {Text: "1.6 m/s2"}}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Physics 101", updated.Title)
		require.Len(t, updated.Questions, 2)

		q := updated.Questions[0]
		assert.Equal(t, force.ID, q.ID)
		assert.Equal(t, "SI unit of force", q.Text)
		assert.Equal(t, 4, q.Marks)
		require.Len(t, q.Options, 3)
		assert.Equal(t, []string{"newton", "dyne", "pascal"}, []string{q.Options[0].Text, q.Options[1].Text, q.Options[2].Text})
		assert.Equal(t, q.Options[2].ID, *q.CorrectOptionID)

		added := updated.Questions[1]
		assert.Equal(t, "g on Earth", added.Text)
		assert.Equal(t, added.Options[0].ID, *added.CorrectOptionID)

		exams, questions, options := f.rows(t)
		assert.Equal(t, [3]int64{1, 2, 5}, [3]int64{exams, questions, options})

		// the response is read back from storage
		reloaded, err := f.service.GetExam(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated.Questions, reloaded.Questions)

		events, err := f.events.ListByKey(ctx, created.ID.String())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, eventlog.ExamUpdated, events[1].Type)
	})

	t.Run("RepeatedIdenticalPayloadIsIdempotent", func(t *testing.T) {
		f := newFixture(t)
		created := createPhysics(t, f)
		current, err := f.service.GetExam(ctx, created.ID)
		require.NoError(t, err)
		payload := snapshot(current)

		first, err := f.service.UpdateExam(ctx, f.teacher, created.ID, payload)
		require.NoError(t, err)
		e1, q1, o1 := f.rows(t)

		second, err := f.service.UpdateExam(ctx, f.teacher, created.ID, payload)
		require.NoError(t, err)
		e2, q2, o2 := f.rows(t)

		assert.Equal(t, [3]int64{1, 2, 5}, [3]int64{e1, q1, o1})
		assert.Equal(t, [3]int64{e1, q1, o1}, [3]int64{e2, q2, o2})

		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		assert.JSONEq(t, string(a), string(b))
		assert.Equal(t, current.Questions, first.Questions)
	})

	t.Run("OutOfRangeIndexKeepsStoredCorrectOption", func(t *testing.T) {
		f := newFixture(t)
		created := createPhysics(t, f)
		payload := snapshot(created)
		payload.Questions[0].CorrectIndex = 99

		updated, err := f.service.UpdateExam(ctx, f.teacher, created.ID, payload)
		require.NoError(t, err)
		assert.Equal(t, *created.Questions[0].CorrectOptionID, *updated.Questions[0].CorrectOptionID)
	})
}

func TestDeleteExam(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.service.DeleteExam(ctx, uuid.New()), exam.ErrExamNotFound)
	})

	t.Run("RemovesHierarchy", func(t *testing.T) {
		f := newFixture(t)
		created := createPhysics(t, f)

		require.NoError(t, f.service.DeleteExam(ctx, created.ID))

		exams, questions, options := f.rows(t)
		assert.Zero(t, exams+questions+options)

		_, err := f.service.GetExam(ctx, created.ID)
		assert.ErrorIs(t, err, exam.ErrExamNotFound)

		events, err := f.events.ListByKey(ctx, created.ID.String())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, eventlog.ExamDeleted, events[1].Type)
	})
}
