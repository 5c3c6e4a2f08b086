package trendstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/culture-compass/internal/domain/recommendation"
)

// ValkeyStore keeps preference counters in a Valkey sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "culture-compass"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Increment(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) Top(ctx context.Context, limit int) ([]recommendation.TrendingPreference, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	entries, err := parseScoredMembers(arr)
	if err != nil {
		return nil, err
	}
	out := make([]recommendation.TrendingPreference, 0, len(entries))
	for _, entry := range entries {
		out = append(out, recommendation.TrendingPreference{
			Preference: s.fetchDisplay(ctx, entry.member),
			Count:      int64(entry.score),
		})
	}
	return out, nil
}

type scoredMember struct {
	member string
	score  float64
}

// parseScoredMembers accepts both the RESP3 [[member, score], ...] shape and
// the flat RESP2 [member, score, member, score] shape.
func parseScoredMembers(arr []valkey.ValkeyMessage) ([]scoredMember, error) {
	out := make([]scoredMember, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
			err    error
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, scoredMember{member: member, score: score})
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build())
	display, err := resp.ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:preferences:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:preferences:display:%s", s.prefix, canonical)
}

var _ recommendation.TrendStore = (*ValkeyStore)(nil)
