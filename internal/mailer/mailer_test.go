package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/mailer"
)

func TestNew(t *testing.T) {
	t.Run("LogMailerWithoutHost", func(t *testing.T) {
		m := mailer.New(config.SMTPConfig{})
		if err := m.Send(context.Background(), "ana@example.com", "hi", "body"); err != nil {
			t.Errorf("log mailer should never fail, got %v", err)
		}
	})

	t.Run("SMTPMailerWithHost", func(t *testing.T) {
		m := mailer.New(config.SMTPConfig{Host: "smtp.example.com", Port: 587})
		if _, ok := m.(mailer.Mailer); !ok {
			t.Fatal("expected a Mailer")
		}
	})
}

func TestRecorder(t *testing.T) {
	rec := &mailer.Recorder{}

	if _, ok := rec.Last(); ok {
		t.Fatal("empty recorder should have no last message")
	}

	_ = rec.Send(context.Background(), "a@example.com", "s1", "b1")
	_ = rec.Send(context.Background(), "b@example.com", "s2", "b2")

	last, ok := rec.Last()
	if !ok || last.To != "b@example.com" || last.Subject != "s2" {
		t.Errorf("unexpected last message: %+v", last)
	}
	if n := len(rec.Messages()); n != 2 {
		t.Errorf("expected 2 messages, got %d", n)
	}

	rec.Err = errors.New("smtp down")
	if err := rec.Send(context.Background(), "c@example.com", "s3", "b3"); err == nil {
		t.Error("expected configured error")
	}
}
