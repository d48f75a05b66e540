package capabilities

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/ZanzyTHEbar/capagent/capagent/capabilities/arith"
)

const (
	calculatorNoExpression = "I couldn't find a mathematical expression in your message. Please provide a calculation like '2 + 2' or 'calculate 15 * 7'."
	calculatorFailed       = "I couldn't calculate that. Please check your mathematical expression and try again."
)

var (
	mathExpressionPattern = regexp.MustCompile(`(?i)(?:calculate|compute|solve|what is)\s*([\d+\-*/().\s]+)|^([\d+\-*/().\s]+)$`)
	nonArithmeticChars    = regexp.MustCompile(`[^0-9+\-*/(). ]`)
)

// Calculator evaluates arithmetic found in the message.
type Calculator struct{}

func NewCalculator() *Calculator { return &Calculator{} }

func (c *Calculator) Name() ports.Label { return ports.LabelCalculator }

func (c *Calculator) Description() string {
	return "Perform mathematical calculations and solve equations"
}

// Execute never returns an error: evaluation failures become a clarification.
func (c *Calculator) Execute(ctx context.Context, message string, history ports.HistoryView) (string, error) {
	expression, ok := extractMathExpression(message)
	if !ok {
		return calculatorNoExpression, nil
	}

	result, err := arith.Eval(nonArithmeticChars.ReplaceAllString(expression, ""))
	if err != nil {
		return calculatorFailed, nil
	}

	return fmt.Sprintf("The result of %s is: **%s**", expression, arith.Format(result)), nil
}

// extractMathExpression returns the arithmetic part of message, either the text
// after a calculate/compute/solve/"what is" keyword or the whole message.
func extractMathExpression(message string) (string, bool) {
	match := mathExpressionPattern.FindStringSubmatch(message)
	if match == nil {
		return "", false
	}

	expression := match[1]
	if expression == "" {
		expression = match[2]
	}
	expression = strings.TrimSpace(expression)
	return expression, expression != ""
}

var _ ports.Capability = (*Calculator)(nil)
