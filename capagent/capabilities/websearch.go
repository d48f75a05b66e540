package capabilities

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

var searchPrefixPattern = regexp.MustCompile(`(?i)^(search for|find|look up|what is|who is|when did|where is|how to)\s*`)

// cannedTopic is a simulated search result, matched by substring on the query.
type cannedTopic struct {
	key    string
	answer string
}

// cannedTopics are checked in order; the first key contained in the query wins.
var cannedTopics = []cannedTopic{
	{
		key:    "artificial intelligence",
		answer: "Artificial Intelligence (AI) refers to the simulation of human intelligence in machines that are programmed to think and learn like humans. It includes machine learning, neural networks, and deep learning technologies.",
	},
	{
		key:    "javascript",
		answer: "JavaScript is a programming language that enables interactive web pages and is an essential part of web applications. It's used for both frontend and backend development.",
	},
	{
		key:    "react",
		answer: "React is a JavaScript library for building user interfaces, particularly web applications. It was developed by Facebook and allows developers to create reusable UI components.",
	},
}

// WebSearch answers questions from a small set of canned topics.
type WebSearch struct{}

func NewWebSearch() *WebSearch { return &WebSearch{} }

func (w *WebSearch) Name() ports.Label { return ports.LabelWebSearch }

func (w *WebSearch) Description() string { return "Search for information and answer questions" }

func (w *WebSearch) Execute(ctx context.Context, message string, history ports.HistoryView) (string, error) {
	query := extractSearchQuery(message)

	return fmt.Sprintf("Here's what I found about \"%s\":\n\n%s\n\n*Note: These are simulated results. In a real implementation, I would perform actual web searches and provide current information.*",
		query, mockSearchResults(query)), nil
}

func extractSearchQuery(message string) string {
	return strings.TrimSpace(searchPrefixPattern.ReplaceAllString(message, ""))
}

func mockSearchResults(query string) string {
	lower := strings.ToLower(query)
	for _, topic := range cannedTopics {
		if strings.Contains(lower, topic.key) {
			return topic.answer
		}
	}

	return fmt.Sprintf("Information about \"%s\":\n\n• Key concepts and definitions\n• Current trends and developments\n• Practical applications\n• Related topics and resources", query)
}

var _ ports.Capability = (*WebSearch)(nil)
