package draft

import (
	"context"

	"github.com/saulo-duarte/exam-portal/internal/config"
)

type DraftContainer struct {
	Handler *Handler
}

func NewDraftContainer(ctx context.Context, apiKey string) *DraftContainer {
	provider, err := NewGeminiProvider(ctx, apiKey)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Question drafts disabled")
	}
	return &DraftContainer{
		Handler: NewHandler(NewService(provider)),
	}
}
