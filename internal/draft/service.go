package draft

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrUnavailable = errors.New("question drafts are not configured")

type Service interface {
	GenerateDrafts(ctx context.Context, req DraftRequest) ([]Draft, error)
}

type service struct {
	provider Provider
}

// NewService accepts a nil provider; every call then fails with
// ErrUnavailable.
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateDrafts(ctx context.Context, req DraftRequest) ([]Draft, error) {
	if s.provider == nil {
		return nil, ErrUnavailable
	}

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	want := ClampCount(req.Count)
	usable := make([]Draft, 0, want)
	for _, d := range drafts {
		if len(usable) == want {
			break
		}
		d.Text = strings.TrimSpace(d.Text)
		if d.Text == "" || d.CorrectIndex < 0 || d.CorrectIndex >= len(d.Options) {
			continue
		}
		if d.Marks <= 0 {
			d.Marks = 1
		}
		usable = append(usable, d)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"topic":     req.Topic,
		"received":  len(drafts),
		"usable":    len(usable),
		"requested": want,
	}).Info("[DRAFT] drafts generated")
	return usable, nil
}
