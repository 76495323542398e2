package mailer

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP mailer when a host is configured and a logging one
// otherwise.
func New(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return NewLogMailer()
	}
	return NewSMTPMailer(cfg)
}

type smtpMailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	})

	sender := m.cfg.Sender
	if sender == "" {
		sender = m.cfg.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.WithError(err).Error("Failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	log.Info("Email sent")
	return nil
}

type logMailer struct{}

func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) Send(ctx context.Context, to, subject, body string) error {
	config.WithContext(ctx).WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("SMTP not configured, email only logged")
	config.WithContext(ctx).Debug(body)
	return nil
}
