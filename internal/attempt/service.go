package attempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"github.com/saulo-duarte/exam-portal/internal/exam"
	"github.com/saulo-duarte/exam-portal/internal/mailer"
	"github.com/saulo-duarte/exam-portal/internal/user"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrForbidden    = errors.New("cannot submit on behalf of another student")
	ErrExamNotFound = exam.ErrExamNotFound
)

type AttemptService interface {
	Submit(ctx context.Context, callerID, studentID uuid.UUID, dto SubmitDTO) (*SubmitResponse, error)
	ExamResults(ctx context.Context, examID uuid.UUID) ([]ExamResultResponse, error)
	StudentResults(ctx context.Context, studentID uuid.UUID) ([]StudentResultResponse, error)
}

type attemptService struct {
	db       *gorm.DB
	repo     AttemptRepository
	exams    exam.ExamRepository
	users    user.UserRepository
	events   eventlog.Repository
	mailer   mailer.Mailer
	now      func() time.Time
	dispatch func(func())
}

type Option func(*attemptService)

func WithClock(now func() time.Time) Option {
	return func(s *attemptService) { s.now = now }
}

// WithDispatcher replaces the goroutine used for result emails.
func WithDispatcher(dispatch func(func())) Option {
	return func(s *attemptService) { s.dispatch = dispatch }
}

func NewService(db *gorm.DB, repo AttemptRepository, exams exam.ExamRepository, users user.UserRepository, events eventlog.Repository, m mailer.Mailer, opts ...Option) AttemptService {
	s := &attemptService{
		db:       db,
		repo:     repo,
		exams:    exams,
		users:    users,
		events:   events,
		mailer:   m,
		now:      time.Now,
		dispatch: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *attemptService) Submit(ctx context.Context, callerID, studentID uuid.UUID, dto SubmitDTO) (*SubmitResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"exam_id":    dto.ExamID,
		"student_id": studentID,
	})

	if callerID != studentID {
		log.WithField("caller_id", callerID).Warn("Submission for another student refused")
		return nil, ErrForbidden
	}

	var (
		ex    *exam.Exam
		a     *Attempt
		total int
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		ex, err = s.exams.WithTx(tx).GetByID(ctx, dto.ExamID)
		if err != nil {
			return err
		}
		if ex == nil {
			return ErrExamNotFound
		}

		score, answers := Score(ex, dto.Answers)
		total = ex.TotalMarks()
		a = &Attempt{
			ID:          uuid.New(),
			StudentID:   studentID,
			ExamID:      ex.ID,
			Score:       score,
			SubmittedAt: s.now(),
			Answers:     answers,
		}
		if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
			return err
		}

		return s.events.WithTx(tx).Append(ctx, eventlog.AttemptSubmitted, a.ID.String(), map[string]interface{}{
			"examId":    ex.ID,
			"studentId": studentID,
			"score":     score,
			"total":     total,
		})
	})
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			log.Warn("Submission for unknown exam")
		} else {
			log.WithError(err).Error("Failed to store attempt")
		}
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"attempt_id": a.ID,
		"score":      a.Score,
		"total":      total,
		"answers":    len(a.Answers),
	}).Info("Attempt submitted")

	s.notify(ctx, ex, studentID, a.Score, total)

	return &SubmitResponse{ID: a.ID, Score: a.Score, Total: total}, nil
}

// notify emails the result to the student and the exam's creator. It runs
// after the attempt is committed and never reports failure to the caller.
func (s *attemptService) notify(ctx context.Context, ex *exam.Exam, studentID uuid.UUID, score, total int) {
	log := config.WithContext(ctx).WithField("exam_id", ex.ID)

	people, err := s.users.GetByIDs(ctx, []uuid.UUID{studentID, ex.CreatedByID})
	if err != nil {
		log.WithError(err).Warn("Could not load result recipients")
		return
	}
	student, teacher := people[studentID], people[ex.CreatedByID]

	studentName := ""
	if student != nil {
		studentName = student.Username
	} else {
		log.WithField("student_id", studentID).Warn("Student not found, skipping result email")
	}
	if teacher == nil {
		log.WithField("creator_id", ex.CreatedByID).Warn("Exam creator not found, skipping result email")
	}

	subject := fmt.Sprintf("Exam Results: %s", ex.Title)
	type message struct{ to, body string }
	var outgoing []message
	if student != nil {
		outgoing = append(outgoing, message{
			to: student.Email,
			body: fmt.Sprintf("Dear %s,\n\nYou scored %d out of %d in the exam \"%s\".\n\nBest regards,\nExam System",
				student.Username, score, total, ex.Title),
		})
	}
	if teacher != nil {
		outgoing = append(outgoing, message{
			to: teacher.Email,
			body: fmt.Sprintf("Dear %s,\n\nStudent %s scored %d out of %d in your exam \"%s\".\n\nBest regards,\nExam System",
				teacher.Username, studentName, score, total, ex.Title),
		})
	}
	if len(outgoing) == 0 {
		return
	}

	sendCtx := context.WithoutCancel(ctx)
	s.dispatch(func() {
		for _, m := range outgoing {
			if err := s.mailer.Send(sendCtx, m.to, subject, m.body); err != nil {
				config.WithContext(sendCtx).WithError(err).WithField("to", m.to).Warn("Result email not sent")
			}
		}
	})
}

func (s *attemptService) ExamResults(ctx context.Context, examID uuid.UUID) ([]ExamResultResponse, error) {
	log := config.WithContext(ctx).WithField("exam_id", examID)

	ex, err := s.exams.GetByID(ctx, examID)
	if err != nil {
		log.WithError(err).Error("Failed to load exam")
		return nil, err
	}
	if ex == nil {
		log.Warn("Results requested for unknown exam")
		return nil, ErrExamNotFound
	}

	attempts, err := s.repo.ListByExam(ctx, examID)
	if err != nil {
		log.WithError(err).Error("Failed to list attempts")
		return nil, err
	}

	results := make([]ExamResultResponse, 0, len(attempts))
	for _, a := range attempts {
		results = append(results, ExamResultResponse{
			StudentID:   a.StudentID,
			StudentName: a.Student.Username,
			Score:       a.Score,
		})
	}
	return results, nil
}

func (s *attemptService) StudentResults(ctx context.Context, studentID uuid.UUID) ([]StudentResultResponse, error) {
	attempts, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list attempts")
		return nil, err
	}

	results := make([]StudentResultResponse, 0, len(attempts))
	for _, a := range attempts {
		total := a.Exam.TotalMarks()
		results = append(results, StudentResultResponse{
			ExamID:      a.ExamID,
			Title:       a.Exam.Title,
			Score:       a.Score,
			Total:       total,
			Percentage:  Percentage(a.Score, total),
			SubmittedAt: a.SubmittedAt,
		})
	}
	return results, nil
}
