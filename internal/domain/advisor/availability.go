package advisor

import (
	"sync/atomic"
	"time"
)

type providerState struct {
	available bool
	downSince time.Time
}

// availability is published as a whole and never mutated after Store.
type availability map[string]providerState

type tracker struct {
	configured    []string
	state         atomic.Pointer[availability]
	recoveryAfter time.Duration
	now           func() time.Time
}

func newTracker(configured []string, recoveryAfter time.Duration, now func() time.Time) *tracker {
	if now == nil {
		now = time.Now
	}
	t := &tracker{
		configured:    append([]string(nil), configured...),
		recoveryAfter: recoveryAfter,
		now:           now,
	}
	t.reset()
	return t
}

func (t *tracker) isAvailable(name string) bool {
	st, ok := (*t.state.Load())[name]
	if !ok {
		return false
	}
	return t.effective(st)
}

func (t *tracker) effective(st providerState) bool {
	if st.available {
		return true
	}
	return t.recoveryAfter > 0 && t.now().Sub(st.downSince) >= t.recoveryAfter
}

// markUnavailable reports whether the call flipped the provider to unavailable.
func (t *tracker) markUnavailable(name string) bool {
	for {
		current := t.state.Load()
		st, ok := (*current)[name]
		if !ok || !t.effective(st) {
			return false
		}
		next := make(availability, len(*current))
		for k, v := range *current {
			next[k] = v
		}
		next[name] = providerState{available: false, downSince: t.now()}
		if t.state.CompareAndSwap(current, &next) {
			return true
		}
	}
}

func (t *tracker) reset() {
	next := make(availability, len(t.configured))
	for _, name := range t.configured {
		next[name] = providerState{available: true}
	}
	t.state.Store(&next)
}
