package advisor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrackerMarkAndReset(t *testing.T) {
	tr := newTracker([]string{"openai", "gemini"}, 0, time.Now)

	require.True(t, tr.isAvailable("openai"))
	require.False(t, tr.isAvailable("unknown"))

	require.True(t, tr.markUnavailable("openai"))
	require.False(t, tr.markUnavailable("openai"))
	require.False(t, tr.isAvailable("openai"))
	require.True(t, tr.isAvailable("gemini"))

	tr.reset()
	require.True(t, tr.isAvailable("openai"))
	tr.reset()
	require.True(t, tr.isAvailable("openai"))
}

func TestTrackerIgnoresUnknownProvider(t *testing.T) {
	tr := newTracker([]string{"openai"}, 0, time.Now)
	require.False(t, tr.markUnavailable("gemini"))
	tr.reset()
	require.False(t, tr.isAvailable("gemini"))
}

func TestDowngradePolicy(t *testing.T) {
	throttled := NewProviderError("openai", KindThrottled, errors.New("429"))
	transient := NewProviderError("openai", KindTransient, errors.New("reset"))

	require.True(t, DowngradeOnThrottle.shouldDowngrade(throttled))
	require.False(t, DowngradeOnThrottle.shouldDowngrade(transient))
	require.False(t, DowngradeOnThrottle.shouldDowngrade(errors.New("plain")))
	require.True(t, DowngradeOnAnyError.shouldDowngrade(transient))
	require.False(t, DowngradeOnAnyError.shouldDowngrade(nil))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindTransient, KindOf(errors.New("plain")))
	require.Equal(t, KindMalformed, KindOf(NewProviderError("gemini", KindMalformed, nil)))
	require.True(t, IsThrottled(NewProviderError("gemini", KindThrottled, nil)))
	require.Contains(t, NewProviderError("gemini", KindThrottled, errors.New("quota")).Error(), "gemini: throttled failure: quota")
}
