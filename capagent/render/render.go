// Package render turns agent responses (bold, emphasis, inline code, fenced
// blocks and newlines) into terminal or HTML output.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlMarkdown keeps single newlines as line breaks, as a chat bubble does.
var htmlMarkdown = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// HTML renders a response as an HTML fragment. Raw HTML in the response is
// omitted rather than passed through.
func HTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Terminal renders responses for an ANSI terminal.
type Terminal struct {
	renderer *glamour.TermRenderer
}

// NewTerminal builds a terminal renderer. Style "auto" (or empty) detects the
// background; anything else is a glamour style name or path. wordWrap 0 disables wrapping.
func NewTerminal(style string, wordWrap int) (*Terminal, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && !strings.EqualFold(style, "auto") {
		styleOpt = glamour.WithStylePath(style)
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	return &Terminal{renderer: renderer}, nil
}

// Render returns the styled text, or the text unchanged if styling fails.
func (t *Terminal) Render(text string) (out string) {
	defer func() {
		// glamour can panic on odd input; plain text is always acceptable
		if r := recover(); r != nil {
			out = text
		}
	}()

	rendered, err := t.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}
