package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/pkg/metrics"
)

// Name identifies this provider in availability reports.
const Name = "gemini"

const defaultAdviceText = "I'd be happy to help you plan your cultural travel experience!"

// Config holds the generative model knobs.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// generation is one model invocation.
type generation struct {
	System string
	User   string
	// Schema switches the model into JSON output when set.
	Schema *genai.Schema
}

type generator interface {
	generate(ctx context.Context, g generation) (string, error)
}

// Provider adapts Gemini generative models to advisor.Provider.
type Provider struct {
	gen    generator
	closer func() error
	logger *slog.Logger
}

// New dials the Gemini API. The caller owns Close.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	p := newWithGenerator(&sdkGenerator{client: client, cfg: cfg, logger: logger}, logger)
	p.closer = client.Close
	return p, nil
}

func newWithGenerator(gen generator, logger *slog.Logger) *Provider {
	return &Provider{
		gen:    gen,
		logger: logger.With("component", "gemini.provider"),
	}
}

// Name implements advisor.Provider.
func (p *Provider) Name() string { return Name }

// Close releases the underlying client.
func (p *Provider) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// Advice implements advisor.Provider.
func (p *Provider) Advice(ctx context.Context, prompt advisor.Prompt) (advisor.AdviceResponse, error) {
	raw, err := p.gen.generate(ctx, generation{System: prompt.System, User: prompt.User, Schema: adviceSchema})
	if err != nil {
		return advisor.AdviceResponse{}, classify(err)
	}
	resp, err := advisor.DecodeAdvice(raw, defaultAdviceText)
	if err != nil {
		return advisor.AdviceResponse{}, advisor.NewProviderError(Name, advisor.KindMalformed, err)
	}
	return resp, nil
}

// Insights implements advisor.Provider.
func (p *Provider) Insights(ctx context.Context, prompt advisor.Prompt) ([]string, error) {
	raw, err := p.gen.generate(ctx, generation{System: prompt.System, User: prompt.User, Schema: insightsSchema})
	if err != nil {
		return nil, classify(err)
	}
	insights, err := advisor.DecodeInsights(raw)
	if err != nil {
		return nil, advisor.NewProviderError(Name, advisor.KindMalformed, err)
	}
	return insights, nil
}

// ItineraryDescription implements advisor.Provider.
func (p *Provider) ItineraryDescription(ctx context.Context, prompt advisor.Prompt) (string, error) {
	raw, err := p.gen.generate(ctx, generation{System: prompt.System, User: prompt.User})
	if err != nil {
		return "", classify(err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", advisor.NewProviderError(Name, advisor.KindMalformed, advisor.ErrEmptyResult)
	}
	return text, nil
}

var (
	adviceSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"response":     {Type: genai.TypeString},
			"suggestions":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"culturalTips": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"response", "suggestions", "culturalTips"},
	}
	insightsSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"insights": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"insights"},
	}
)

type sdkGenerator struct {
	client *genai.Client
	cfg    Config
	logger *slog.Logger
}

func (g *sdkGenerator) generate(ctx context.Context, gen generation) (string, error) {
	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	if g.cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)
	}
	if strings.TrimSpace(gen.System) != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(gen.System)}}
	}
	if gen.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = gen.Schema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(gen.User))
	if err != nil {
		return "", err
	}
	if resp.UsageMetadata != nil && g.logger != nil {
		usage := metrics.TokenUsage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
		g.logger.Debug("gemini usage", append([]any{"model", g.cfg.Model}, usage.LogAttrs()...)...)
	}
	return candidateText(resp)
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", advisor.NewProviderError(Name, advisor.KindMalformed, advisor.ErrEmptyResult)
	}
	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		parts = append(parts, string(txt))
	}
	if len(parts) == 0 {
		return "", advisor.NewProviderError(Name, advisor.KindMalformed, advisor.ErrEmptyResult)
	}
	return strings.Join(parts, "\n"), nil
}

// classify keeps already classified errors and tags quota or rate limit
// responses as throttled. Blocked prompts count as malformed output.
func classify(err error) error {
	var providerErr *advisor.ProviderError
	if errors.As(err, &providerErr) {
		return err
	}
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return advisor.NewProviderError(Name, advisor.KindMalformed, err)
	}
	if isThrottled(err) {
		return advisor.NewProviderError(Name, advisor.KindThrottled, err)
	}
	return advisor.NewProviderError(Name, advisor.KindTransient, err)
}

func isThrottled(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return true
		}
		if strings.Contains(apiErr.Message, "RESOURCE_EXHAUSTED") {
			return true
		}
	}
	return strings.Contains(err.Error(), "RESOURCE_EXHAUSTED")
}

var _ advisor.Provider = (*Provider)(nil)
