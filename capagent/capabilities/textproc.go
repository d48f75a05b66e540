package capabilities

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextAction is the text operation requested by a message.
type TextAction string

const (
	TextActionCount     TextAction = "count"
	TextActionSummarize TextAction = "summarize"
	TextActionAnalyze   TextAction = "analyze"
	TextActionFormat    TextAction = "format"
	TextActionUnknown   TextAction = "unknown"
)

var (
	textActionPatterns = []struct {
		action  TextAction
		pattern *regexp.Regexp
	}{
		{TextActionCount, regexp.MustCompile(`count|words|characters`)},
		{TextActionSummarize, regexp.MustCompile(`summarize|summary`)},
		{TextActionAnalyze, regexp.MustCompile(`analyze|sentiment|emotion`)},
		{TextActionFormat, regexp.MustCompile(`format|style|transform`)},
	}

	upperPattern = regexp.MustCompile(`uppercase|upper`)
	lowerPattern = regexp.MustCompile(`lowercase|lower`)
	titlePattern = regexp.MustCompile(`title`)
)

// TextStats is the result of counting a text.
type TextStats struct {
	Words      int
	Characters int
	Spaces     int
}

// CountText counts whitespace-separated words, characters (runes) and
// whitespace characters.
func CountText(text string) TextStats {
	spaces := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			spaces++
		}
	}
	return TextStats{
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
		Spaces:     spaces,
	}
}

// TextProcessor counts, formats and (pretends to) summarize or analyze text.
type TextProcessor struct{}

func NewTextProcessor() *TextProcessor { return &TextProcessor{} }

func (p *TextProcessor) Name() ports.Label { return ports.LabelTextProcessor }

func (p *TextProcessor) Description() string { return "Process and analyze text content" }

// Execute processes the whole message; the message is not split into an
// instruction and a payload.
func (p *TextProcessor) Execute(ctx context.Context, message string, history ports.HistoryView) (string, error) {
	text := message

	switch determineTextAction(message) {
	case TextActionCount:
		stats := CountText(text)
		return fmt.Sprintf("Text analysis:\n• **%d** words\n• **%d** characters\n• **%d** spaces",
			stats.Words, stats.Characters, stats.Spaces), nil
	case TextActionSummarize:
		return "Here's a summary of the text:\n\n*This is a simulated summary. In a real implementation, I would use natural language processing to create an actual summary of the provided text.*\n\nKey points identified:\n• Main topic extraction\n• Important details\n• Core conclusions", nil
	case TextActionAnalyze:
		return "Text analysis results:\n\n**Sentiment**: Neutral to Positive\n**Tone**: Informative\n**Complexity**: Medium\n\n*This is a simulated analysis. Real implementation would use NLP models for accurate sentiment and tone analysis.*", nil
	case TextActionFormat:
		return p.formatText(text, message), nil
	default:
		return "I can help you process text in various ways: count words, summarize content, analyze sentiment, or format text. What would you like me to do?", nil
	}
}

func (p *TextProcessor) formatText(text, message string) string {
	// Casers are stateful, so each call gets its own.
	lower := strings.ToLower(message)
	switch {
	case upperPattern.MatchString(lower):
		return "Formatted text (UPPERCASE):\n\n" + cases.Upper(language.Und).String(text)
	case lowerPattern.MatchString(lower):
		return "Formatted text (lowercase):\n\n" + cases.Lower(language.Und).String(text)
	case titlePattern.MatchString(lower):
		return "Formatted text (Title Case):\n\n" + cases.Title(language.Und).String(text)
	default:
		return "I can format text in various ways:\n• UPPERCASE\n• lowercase\n• Title Case\n• And more formatting options"
	}
}

func determineTextAction(message string) TextAction {
	lower := strings.ToLower(message)
	for _, candidate := range textActionPatterns {
		if candidate.pattern.MatchString(lower) {
			return candidate.action
		}
	}
	return TextActionUnknown
}

var _ ports.Capability = (*TextProcessor)(nil)
