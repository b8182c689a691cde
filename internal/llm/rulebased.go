package llm

import (
	"context"
	"strings"

	"github.com/example/booking-assistant/internal/bot"
)

// RuleBased is a deterministic Generator used when no API key is configured.
// It keys canned replies off the collector's instruction text, so the bot
// stays fully functional offline, just less chatty.
type RuleBased struct{}

// Generate implements bot.Generator. It never fails.
func (RuleBased) Generate(_ context.Context, instruction string, _ []bot.Message) (string, error) {
	lower := strings.ToLower(instruction)
	switch {
	case strings.Contains(lower, "greet"):
		return "Hello! I can book a time slot for you. Please provide the start date in ISO format (YYYY-MM-DDTHH:MM:SS).", nil
	case strings.Contains(lower, "not a valid timestamp"):
		return "That doesn't look like a valid timestamp. Please use ISO format, for example 2025-03-01T10:00:00.", nil
	case strings.Contains(lower, "earlier than the end date"):
		return "The start date must be earlier than the end date. Let's start over: please provide the start date again.", nil
	case strings.Contains(lower, "end date"):
		return "Got it. Now please provide the end date in ISO format (YYYY-MM-DDTHH:MM:SS).", nil
	case strings.Contains(lower, "cancel"):
		return "Alright, please provide the booking ID or date you'd like to cancel.", nil
	default:
		return "I'm here to help you book a time slot. How can I help you today?", nil
	}
}

// compile-time check: RuleBased must satisfy bot.Generator.
var _ bot.Generator = RuleBased{}
