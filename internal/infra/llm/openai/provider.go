package openai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/pkg/metrics"
)

// Name identifies this provider in availability reports.
const Name = "openai"

const defaultAdviceText = "I'm sorry, I couldn't process your request. Please try asking about travel destinations, cultural sites, or travel tips."

// Config holds the chat completion knobs.
type Config struct {
	APIKey               string
	BaseURL              string
	Model                string
	Temperature          float32
	AdviceMaxTokens      int
	InsightsMaxTokens    int
	DescriptionMaxTokens int
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Provider adapts OpenAI chat completions to advisor.Provider.
type Provider struct {
	cfg    Config
	client chatCompleter
	logger *slog.Logger
}

// New builds a provider with an HTTP client for the configured endpoint.
func New(cfg Config, logger *slog.Logger) *Provider {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientCfg.BaseURL = strings.TrimRight(base, "/")
	}
	return newWithClient(cfg, goopenai.NewClientWithConfig(clientCfg), logger)
}

func newWithClient(cfg Config, client chatCompleter, logger *slog.Logger) *Provider {
	if cfg.Model == "" {
		cfg.Model = goopenai.GPT4o
	}
	return &Provider{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "openai.provider"),
	}
}

// Name implements advisor.Provider.
func (p *Provider) Name() string { return Name }

// Advice implements advisor.Provider.
func (p *Provider) Advice(ctx context.Context, prompt advisor.Prompt) (advisor.AdviceResponse, error) {
	raw, err := p.complete(ctx, prompt, p.cfg.AdviceMaxTokens, true)
	if err != nil {
		return advisor.AdviceResponse{}, err
	}
	resp, err := advisor.DecodeAdvice(raw, defaultAdviceText)
	if err != nil {
		return advisor.AdviceResponse{}, advisor.NewProviderError(Name, advisor.KindMalformed, err)
	}
	return resp, nil
}

// Insights implements advisor.Provider.
func (p *Provider) Insights(ctx context.Context, prompt advisor.Prompt) ([]string, error) {
	raw, err := p.complete(ctx, prompt, p.cfg.InsightsMaxTokens, true)
	if err != nil {
		return nil, err
	}
	insights, err := advisor.DecodeInsights(raw)
	if err != nil {
		return nil, advisor.NewProviderError(Name, advisor.KindMalformed, err)
	}
	return insights, nil
}

// ItineraryDescription implements advisor.Provider.
func (p *Provider) ItineraryDescription(ctx context.Context, prompt advisor.Prompt) (string, error) {
	raw, err := p.complete(ctx, prompt, p.cfg.DescriptionMaxTokens, false)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", advisor.NewProviderError(Name, advisor.KindMalformed, advisor.ErrEmptyResult)
	}
	return text, nil
}

func (p *Provider) complete(ctx context.Context, prompt advisor.Prompt, maxTokens int, jsonMode bool) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model: p.cfg.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt.User},
		},
		Temperature: p.cfg.Temperature,
		MaxTokens:   maxTokens,
	}
	if jsonMode {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{Type: goopenai.ChatCompletionResponseFormatTypeJSONObject}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	usage := metrics.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	if !usage.IsZero() {
		p.logger.Debug("openai completion usage", usage.LogAttrs()...)
	}
	if len(resp.Choices) == 0 {
		return "", advisor.NewProviderError(Name, advisor.KindMalformed, advisor.ErrEmptyResult)
	}
	return resp.Choices[0].Message.Content, nil
}

// classify maps SDK errors to provider error kinds. Rate limits and quota
// exhaustion are throttled; everything else is transient.
func classify(err error) error {
	if isThrottled(err) {
		return advisor.NewProviderError(Name, advisor.KindThrottled, err)
	}
	return advisor.NewProviderError(Name, advisor.KindTransient, err)
}

func isThrottled(err error) bool {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return true
		}
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return true
		}
		return apiErr.Type == "insufficient_quota"
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}

var _ advisor.Provider = (*Provider)(nil)
