package advisor

import (
	"encoding/json"
	"errors"
	"strings"
)

// DecodeAdvice parses a provider's JSON answer. Missing fields become empty
// lists or defaultResponse; only unparseable payloads are rejected.
func DecodeAdvice(raw, defaultResponse string) (AdviceResponse, error) {
	var wire struct {
		Response     json.RawMessage `json:"response"`
		Suggestions  json.RawMessage `json:"suggestions"`
		CulturalTips json.RawMessage `json:"culturalTips"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &wire); err != nil {
		return AdviceResponse{}, err
	}

	response, err := coerceString(wire.Response)
	if err != nil {
		return AdviceResponse{}, err
	}
	suggestions, err := coerceStringArray(wire.Suggestions)
	if err != nil {
		return AdviceResponse{}, err
	}
	tips, err := coerceStringArray(wire.CulturalTips)
	if err != nil {
		return AdviceResponse{}, err
	}

	return AdviceResponse{
		Response:     firstNonEmpty(response, defaultResponse),
		Suggestions:  normalizeList(suggestions),
		CulturalTips: normalizeList(tips),
	}, nil
}

// DecodeInsights accepts either {"insights": [...]} or a bare JSON array.
func DecodeInsights(raw string) ([]string, error) {
	sanitized := stripCodeFence(raw)
	if sanitized == "" {
		return nil, ErrEmptyResult
	}
	switch sanitized[0] {
	case '[':
		items, err := coerceStringArray(json.RawMessage(sanitized))
		if err != nil {
			return nil, err
		}
		return normalizeList(items), nil
	case '{':
		var wire struct {
			Insights json.RawMessage `json:"insights"`
		}
		if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
			return nil, err
		}
		items, err := coerceStringArray(wire.Insights)
		if err != nil {
			return nil, err
		}
		return normalizeList(items), nil
	default:
		return nil, errors.New("unsupported insights format")
	}
}

func stripCodeFence(raw string) string {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))
	return sanitized
}

func coerceString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] != '"' {
		return "", errors.New("response must be a string")
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func coerceStringArray(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		if strings.TrimSpace(single) == "" {
			return nil, nil
		}
		return []string{single}, nil
	case '[':
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		return many, nil
	default:
		return nil, errors.New("unsupported list format")
	}
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{})
	for _, item := range items {
		clean := strings.TrimSpace(item)
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
