package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

const adviceSystemPrompt = `You are a knowledgeable cultural travel assistant. You specialize in personalized travel advice, cultural insights, and practical tips for travelers interested in cultural experiences worldwide.

Your expertise includes:
- Cultural sites, museums, and historical landmarks
- Local customs and etiquette
- Authentic dining recommendations
- Transportation and logistics
- Seasonal travel considerations
- Cultural festivals and events
- Art, music, and performance recommendations

Always provide helpful, accurate, and culturally sensitive advice. When possible, include practical tips like best times to visit, how to book tickets, local customs to respect, and insider knowledge that enhances the cultural experience.`

const adviceFormat = `Include 3-5 actionable suggestions and 3-5 cultural tips when relevant.
Respond ONLY with valid JSON using this shape: {"response": "main response", "suggestions": ["quick suggestion"], "culturalTips": ["cultural tip"]}. Use empty arrays when nothing applies.`

// AdvicePrompt builds the chat prompt. Context sections are left out when empty.
func AdvicePrompt(req AdviceRequest) Prompt {
	var b strings.Builder
	b.WriteString(adviceSystemPrompt)

	var sections []string
	if prefs := cleanTokens(req.Preferences); len(prefs) > 0 {
		sections = append(sections, "User preferences: "+strings.Join(prefs, ", "))
	}
	if dest := strings.TrimSpace(req.Destination); dest != "" {
		sections = append(sections, "Current destination context: "+dest)
	}
	if len(req.Itinerary) > 0 {
		sections = append(sections, "Current itinerary: "+itineraryJSON(req.Itinerary))
	}
	if len(sections) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(sections, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(adviceFormat)

	return Prompt{
		System: b.String(),
		User:   strings.TrimSpace(req.Message),
	}
}

// InsightsPrompt asks for a short list of destination specific insights.
func InsightsPrompt(destination string, preferences []string) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 3-5 cultural insights and practical tips for travelers visiting %s. Focus on:\n", strings.TrimSpace(destination))
	b.WriteString("- Local customs and etiquette\n")
	if prefs := cleanTokens(preferences); len(prefs) > 0 {
		fmt.Fprintf(&b, "- Cultural experiences that align with: %s\n", strings.Join(prefs, ", "))
	}
	b.WriteString("- Practical travel tips specific to this destination\n")
	b.WriteString("- Respectful behavior at cultural sites\n\n")
	b.WriteString(`Respond ONLY with valid JSON using this shape: {"insights": ["insight 1", "insight 2", "insight 3"]}`)

	return Prompt{
		System: "You are a cultural travel expert who writes short, concrete insights.",
		User:   b.String(),
	}
}

// ItineraryPrompt asks for a single narrative paragraph describing the items.
func ItineraryPrompt(items []ItineraryItem) Prompt {
	var b strings.Builder
	b.WriteString("Create a narrative description of this travel itinerary, highlighting the cultural experiences and flow of the journey.")
	if len(items) > 0 {
		b.WriteString("\n\nItinerary: ")
		b.WriteString(itineraryJSON(items))
	}
	b.WriteString("\n\nFocus on the cultural significance and connections between experiences. Make it engaging and informative. Return a single paragraph of plain text.")

	return Prompt{
		System: "You are a travel writer specializing in cultural journeys.",
		User:   b.String(),
	}
}

func itineraryJSON(items []ItineraryItem) string {
	if data, err := json.Marshal(items); err == nil {
		return string(data)
	}
	return "[]"
}

func cleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if clean := strings.TrimSpace(token); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
