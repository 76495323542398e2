package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/exam-portal/internal/config"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

var ErrEmptyReply = errors.New("empty reply from model")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Draft, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Draft, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		geminiModel,
		genai.Text(system+"\n\n"+user),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[DRAFT] raw model reply:\n%s", raw)

	drafts, err := ParseDrafts(raw)
	if err != nil {
		log.WithError(err).Error("[DRAFT] could not decode model reply")
		return nil, err
	}
	return drafts, nil
}

// ParseDrafts decodes a model reply, with or without a ```json fence.
func ParseDrafts(raw string) ([]Draft, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyReply
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var drafts []Draft
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}
	return drafts, nil
}
