package advisor

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Service produces travel advice, insights, and itinerary narratives. Its
// operations never fail: when every provider is exhausted a static degraded
// answer is returned.
type Service interface {
	TravelAdvice(ctx context.Context, req AdviceRequest) AdviceResponse
	CulturalInsights(ctx context.Context, destination string, preferences []string) []string
	ItineraryDescription(ctx context.Context, items []ItineraryItem) string
	Status() Status
	Reset()
}

type service struct {
	cfg     Config
	chain   []Registration
	names   []string
	tracker *tracker
	logger  *slog.Logger
}

// NewService wires up the orchestrator. Registrations are tried in order;
// unconfigured ones are excluded from the chain.
func NewService(cfg Config, registrations []Registration, logger *slog.Logger) Service {
	return newService(cfg, registrations, logger, time.Now)
}

func newService(cfg Config, registrations []Registration, logger *slog.Logger, now func() time.Time) *service {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	s := &service{
		cfg:    cfg,
		logger: logger.With("component", "advisor.service"),
	}
	var configured []string
	for _, reg := range registrations {
		s.names = append(s.names, reg.Name)
		if reg.Provider == nil {
			s.logger.Warn("provider not configured, excluding from fallback chain", "provider", reg.Name)
			continue
		}
		s.chain = append(s.chain, reg)
		configured = append(configured, reg.Name)
	}
	s.tracker = newTracker(configured, cfg.RecoveryAfter, now)
	return s
}

func (s *service) TravelAdvice(ctx context.Context, req AdviceRequest) AdviceResponse {
	prompt := AdvicePrompt(req)
	resp, ok := orchestrate(ctx, s, OperationAdvice, func(ctx context.Context, p Provider) (AdviceResponse, error) {
		out, err := p.Advice(ctx, prompt)
		if err != nil {
			return AdviceResponse{}, err
		}
		out.Response = strings.TrimSpace(out.Response)
		if out.Response == "" {
			return AdviceResponse{}, NewProviderError(p.Name(), KindMalformed, ErrEmptyResult)
		}
		out.Suggestions = normalizeList(out.Suggestions)
		out.CulturalTips = normalizeList(out.CulturalTips)
		return out, nil
	})
	if !ok {
		return DegradedAdvice()
	}
	return resp
}

func (s *service) CulturalInsights(ctx context.Context, destination string, preferences []string) []string {
	prompt := InsightsPrompt(destination, preferences)
	insights, ok := orchestrate(ctx, s, OperationInsights, func(ctx context.Context, p Provider) ([]string, error) {
		out, err := p.Insights(ctx, prompt)
		if err != nil {
			return nil, err
		}
		out = normalizeList(out)
		if len(out) == 0 {
			return nil, NewProviderError(p.Name(), KindMalformed, ErrEmptyResult)
		}
		if len(out) > maxInsights {
			out = out[:maxInsights]
		}
		return out, nil
	})
	if !ok {
		return DegradedInsights(strings.TrimSpace(destination))
	}
	return insights
}

func (s *service) ItineraryDescription(ctx context.Context, items []ItineraryItem) string {
	prompt := ItineraryPrompt(items)
	description, ok := orchestrate(ctx, s, OperationItinerary, func(ctx context.Context, p Provider) (string, error) {
		out, err := p.ItineraryDescription(ctx, prompt)
		if err != nil {
			return "", err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return "", NewProviderError(p.Name(), KindMalformed, ErrEmptyResult)
		}
		return out, nil
	})
	if !ok {
		return DegradedItineraryDescription
	}
	return description
}

func (s *service) Status() Status {
	status := make(Status, len(s.names))
	for _, name := range s.names {
		status[name] = s.tracker.isAvailable(name)
	}
	return status
}

func (s *service) Reset() {
	s.tracker.reset()
	s.logger.Info("provider availability reset")
}

// orchestrate walks the fallback chain and reports whether any provider answered.
func orchestrate[T any](ctx context.Context, s *service, op Operation, call func(context.Context, Provider) (T, error)) (T, bool) {
	var zero T
	for _, reg := range s.chain {
		if !s.tracker.isAvailable(reg.Name) {
			s.logger.Debug("provider unavailable, skipping", "provider", reg.Name, "operation", op)
			continue
		}

		callCtx, cancel := s.callContext(ctx)
		result, err := call(callCtx, reg.Provider)
		cancel()
		if err == nil {
			return result, true
		}

		if ctx.Err() != nil {
			// Caller cancellation says nothing about provider health.
			s.logger.Warn("request cancelled during provider call", "provider", reg.Name, "operation", op, "error", err)
			return zero, false
		}

		kind := KindOf(err)
		s.logger.Warn("provider call failed", "provider", reg.Name, "operation", op, "kind", kind, "error", err)
		if reg.Policy.shouldDowngrade(err) && s.tracker.markUnavailable(reg.Name) {
			s.logger.Warn("provider marked unavailable", "provider", reg.Name, "operation", op, "kind", kind)
		}
	}

	s.logger.Error("all providers failed, returning degraded response", "operation", op)
	return zero, false
}

func (s *service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.CallTimeout)
}
