package advisor

import "context"

// Prompt is the provider agnostic payload produced by the request builders.
type Prompt struct {
	System string
	User   string
}

// Provider is one external text generation capability.
type Provider interface {
	Name() string
	Advice(ctx context.Context, prompt Prompt) (AdviceResponse, error)
	Insights(ctx context.Context, prompt Prompt) ([]string, error)
	ItineraryDescription(ctx context.Context, prompt Prompt) (string, error)
}

// DowngradePolicy decides which failures take a provider out of rotation.
type DowngradePolicy int

const (
	// DowngradeOnThrottle only reacts to rate limit or quota errors.
	DowngradeOnThrottle DowngradePolicy = iota
	// DowngradeOnAnyError reacts to every failure.
	DowngradeOnAnyError
)

// Registration places a provider in the fallback chain. A nil Provider marks
// the slot as unconfigured: it is skipped and always reported unavailable.
type Registration struct {
	Name     string
	Provider Provider
	Policy   DowngradePolicy
}

func (p DowngradePolicy) shouldDowngrade(err error) bool {
	if err == nil {
		return false
	}
	if p == DowngradeOnAnyError {
		return true
	}
	return IsThrottled(err)
}
