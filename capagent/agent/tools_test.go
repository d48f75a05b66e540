package agent

import (
	"context"
	"encoding/json"
	"testing"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityTool_Invoke(t *testing.T) {
	a := newTestAgent(t, Options{})

	tool, err := a.Tool("calculator")
	require.NoError(t, err)
	assert.Equal(t, "calculator", tool.Name())
	assert.True(t, json.Valid(tool.Schema()))

	result, err := tool.Invoke(context.Background(), json.RawMessage(`{"message": "2 * (3 + 4)"}`))
	require.NoError(t, err)
	assert.Equal(t, ToolResult{
		Capability: ports.LabelCalculator,
		Response:   "The result of 2 * (3 + 4) is: **14**",
	}, result)

	assert.Empty(t, a.History(), "tool invocations are not recorded")
}

func TestCapabilityTool_InvalidArgs(t *testing.T) {
	a := newTestAgent(t, Options{})
	tool, err := a.Tool("textProcessor")
	require.NoError(t, err)

	cases := map[string]string{
		`{"text": "hello"}`:            "schema validation errors",
		`{"message": 5}`:               "schema validation errors",
		`{"message": "a", "extra": 1}`: "schema validation errors",
		`not json`:                     "not valid JSON",
	}
	for args, want := range cases {
		_, err := tool.Invoke(context.Background(), json.RawMessage(args))
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), want, args)
	}
}

func TestAgent_Tools(t *testing.T) {
	a := newTestAgent(t, Options{})

	tools := a.Tools()
	require.Len(t, tools, 6)
	for i, info := range a.Capabilities() {
		assert.Equal(t, info.Name.String(), tools[i].Name())
	}

	spec := tools[0].(*CapabilityTool).Spec()
	assert.Equal(t, "calculator", spec.Name)
	assert.NotEmpty(t, spec.Description)

	_, err := a.Tool("general")
	assert.True(t, IsUnknownCapability(err))
}

func TestJSONValidator_EmptySchema(t *testing.T) {
	assert.NoError(t, NewJSONValidator().Validate(json.RawMessage(`anything`), nil))
}
