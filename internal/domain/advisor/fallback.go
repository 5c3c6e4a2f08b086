package advisor

import "fmt"

const (
	degradedAdviceText = "I'm sorry, I'm having trouble processing your request right now. Please try again later or contact support if the problem persists."

	// DegradedItineraryDescription is returned when no provider can describe an itinerary.
	DegradedItineraryDescription = "Your personalized cultural travel itinerary includes carefully selected destinations, cultural sites, and dining experiences tailored to your preferences."
)

// DegradedAdvice is the static answer used once every provider has failed.
func DegradedAdvice() AdviceResponse {
	return AdviceResponse{
		Response: degradedAdviceText,
		Suggestions: []string{
			"Try asking a different question",
			"Check back in a few minutes",
			"Contact support for assistance",
		},
		CulturalTips: []string{},
	}
}

// DegradedInsights returns generic insights that only mention the destination name.
func DegradedInsights(destination string) []string {
	return []string{
		fmt.Sprintf("%s offers rich cultural experiences for travelers", destination),
		"Local customs and traditions provide unique insights into the culture",
		"Try local cuisine and interact with locals for authentic experiences",
		"Visit museums and cultural sites to learn about the history",
		"Respect local customs and dress codes when visiting religious sites",
	}
}
