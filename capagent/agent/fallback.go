package agent

import (
	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

// FallbackResponder answers messages no capability claims.
type FallbackResponder struct {
	random ports.RandomSource
}

func NewFallbackResponder(random ports.RandomSource) *FallbackResponder {
	return &FallbackResponder{random: random}
}

// FallbackResponses returns the five templates for message, in selection order.
func FallbackResponses(message string) []string {
	return []string{
		"I understand you're asking about: " + message + ". How can I help you with that?",
		"That's an interesting point. Could you provide more details so I can assist you better?",
		"I'm here to help! I can perform calculations, file operations, searches, text processing, and more. What would you like me to do?",
		"Let me think about that... Could you be more specific about what you need help with?",
		"I'm an AI agent with various capabilities. Try asking me to calculate something, search for information, or process text!",
	}
}

// Respond picks one template uniformly at random.
func (f *FallbackResponder) Respond(message string) string {
	responses := FallbackResponses(message)
	return responses[f.random.IntN(len(responses))]
}
