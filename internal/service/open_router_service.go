package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService talks to the OpenRouter chat-completions endpoint. It is
// the fallback provider when Gemini is unavailable.
type OpenRouterService struct {
	APIKey  string
	Model   string
	BaseURL string
	client  *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		client:  resty.New(),
	}
}

func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(s.BaseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrModelInvocation, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", apperr.ErrModelInvocation, resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", apperr.ErrModelInvocation)
	}
	return text, nil
}
