package agent

import (
	"regexp"
	"strings"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

// Intent is the capability a message was classified to, with a fixed confidence.
type Intent struct {
	Capability ports.Label `json:"capability"`
	Confidence float64     `json:"confidence"`
}

// Rule is one entry of the ordered classification table.
type Rule struct {
	Capability ports.Label
	Confidence float64
	Pattern    *regexp.Regexp
}

// GeneralConfidence is reported when no rule matches.
const GeneralConfidence = 0.5

// defaultRules is evaluated top to bottom and the first match wins, so a message
// mentioning both a file and a search is a fileOps request.
var defaultRules = []Rule{
	{ports.LabelCalculator, 0.9, regexp.MustCompile(`calculate|compute|math|^[+\-*/()0-9\s]+$|what is \d|solve`)},
	{ports.LabelFileOps, 0.8, regexp.MustCompile(`file|folder|directory|create|save|read|write|delete`)},
	{ports.LabelWebSearch, 0.7, regexp.MustCompile(`search|find|look up|what is|who is|when did|where is|how to`)},
	{ports.LabelTextProcessor, 0.8, regexp.MustCompile(`translate|summarize|analyze|count words|sentiment|format`)},
	{ports.LabelTimeWeather, 0.8, regexp.MustCompile(`time|date|weather|temperature|forecast`)},
	{ports.LabelCodeGenerator, 0.8, regexp.MustCompile(`code|function|script|program|algorithm|write.*code`)},
}

// Classifier maps a message to an Intent using keyword rules.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules}
}

// Classify lower-cases the message and returns the intent of the first
// matching rule, or general.
func (c *Classifier) Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(lower) {
			return Intent{Capability: rule.Capability, Confidence: rule.Confidence}
		}
	}
	return Intent{Capability: ports.LabelGeneral, Confidence: GeneralConfidence}
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}
