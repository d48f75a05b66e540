package agent

import (
	"testing"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier()

	cases := []struct {
		message    string
		capability ports.Label
		confidence float64
	}{
		{"calculate 2 + 2", ports.LabelCalculator, 0.9},
		{"2 + 2", ports.LabelCalculator, 0.9},
		{"(3 * 4) / 2", ports.LabelCalculator, 0.9},
		{"What is 5 times 3", ports.LabelCalculator, 0.9},
		{"I love math", ports.LabelCalculator, 0.9},
		{"search for a file", ports.LabelFileOps, 0.8},
		{"write a python function", ports.LabelFileOps, 0.8},
		{"Create a new folder", ports.LabelFileOps, 0.8},
		{"What is the capital of France?", ports.LabelWebSearch, 0.7},
		{"how to tie a knot", ports.LabelWebSearch, 0.7},
		{"translate this to spanish", ports.LabelTextProcessor, 0.8},
		{"count words in this", ports.LabelTextProcessor, 0.8},
		{"what's the weather like", ports.LabelTimeWeather, 0.8},
		{"What's the DATE today?", ports.LabelTimeWeather, 0.8},
		{"generate a sorting algorithm", ports.LabelCodeGenerator, 0.8},
		{"show me some code", ports.LabelCodeGenerator, 0.8},
		{"hello there", ports.LabelGeneral, GeneralConfidence},
		{"zzz qqq", ports.LabelGeneral, GeneralConfidence},
		{"", ports.LabelGeneral, GeneralConfidence},
	}

	for _, tc := range cases {
		got := classifier.Classify(tc.message)
		assert.Equal(t, tc.capability, got.Capability, tc.message)
		assert.Equal(t, tc.confidence, got.Confidence, tc.message)
	}
}

func TestClassify_ArithmeticOnlyMustBeWholeMessage(t *testing.T) {
	classifier := NewClassifier()

	// Digits alone do not make a calculation once other words appear.
	assert.Equal(t, ports.LabelGeneral, classifier.Classify("room 101").Capability)
	assert.Equal(t, ports.LabelCalculator, classifier.Classify("  42  ").Capability)
}

func TestRules_OrderAndCopy(t *testing.T) {
	classifier := NewClassifier()

	rules := classifier.Rules()
	var order []ports.Label
	for _, r := range rules {
		order = append(order, r.Capability)
	}
	assert.Equal(t, []ports.Label{
		ports.LabelCalculator,
		ports.LabelFileOps,
		ports.LabelWebSearch,
		ports.LabelTextProcessor,
		ports.LabelTimeWeather,
		ports.LabelCodeGenerator,
	}, order)

	rules[0] = Rule{}
	assert.Equal(t, ports.LabelCalculator, classifier.Rules()[0].Capability)
}
