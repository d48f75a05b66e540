package capabilities

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

const (
	defaultLanguage = "javascript"
	defaultCodeKind = "snippet"
)

var (
	// java is checked after javascript, so a plain "java" match never means javascript.
	languagePatterns = []struct {
		language string
		pattern  *regexp.Regexp
	}{
		{"javascript", regexp.MustCompile(`javascript|js`)},
		{"python", regexp.MustCompile(`python`)},
		{"java", regexp.MustCompile(`java`)},
		{"html", regexp.MustCompile(`html`)},
		{"css", regexp.MustCompile(`css`)},
		{"react", regexp.MustCompile(`react`)},
	}

	codeKindPatterns = []struct {
		kind    string
		pattern *regexp.Regexp
	}{
		{"function", regexp.MustCompile(`function`)},
		{"class", regexp.MustCompile(`class`)},
		{"component", regexp.MustCompile(`component`)},
		{"algorithm", regexp.MustCompile(`algorithm`)},
	}
)

// CodeGenerator returns canned code templates.
type CodeGenerator struct {
	templates map[string]map[string]string
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{templates: codeTemplates}
}

func (g *CodeGenerator) Name() ports.Label { return ports.LabelCodeGenerator }

func (g *CodeGenerator) Description() string {
	return "Generate code snippets and programming solutions"
}

func (g *CodeGenerator) Execute(ctx context.Context, message string, history ports.HistoryView) (string, error) {
	language := detectLanguage(message)
	kind := detectCodeKind(message)

	return fmt.Sprintf("Here's a %s %s based on your request:\n\n```%s\n%s\n```\n\n*This is a template example. In a real implementation, I would generate code specifically tailored to your exact requirements.*",
		language, kind, language, g.Template(language, kind)), nil
}

// Template returns the template for (language, kind), falling back to the
// javascript function template.
func (g *CodeGenerator) Template(language, kind string) string {
	if byKind, ok := g.templates[language]; ok {
		if code, ok := byKind[kind]; ok {
			return code
		}
	}
	return g.templates[defaultLanguage]["function"]
}

func detectLanguage(message string) string {
	lower := strings.ToLower(message)
	for _, candidate := range languagePatterns {
		if candidate.pattern.MatchString(lower) {
			return candidate.language
		}
	}
	return defaultLanguage
}

func detectCodeKind(message string) string {
	lower := strings.ToLower(message)
	for _, candidate := range codeKindPatterns {
		if candidate.pattern.MatchString(lower) {
			return candidate.kind
		}
	}
	return defaultCodeKind
}

var _ ports.Capability = (*CodeGenerator)(nil)
