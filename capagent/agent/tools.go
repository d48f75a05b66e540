package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/xeipuuv/gojsonschema"
)

// capabilityToolSchema is shared by every capability tool.
var capabilityToolSchema = []byte(`{
  "type": "object",
  "properties": {
    "message": {"type": "string", "description": "The user message to handle"}
  },
  "required": ["message"],
  "additionalProperties": false
}`)

// ToolResult is what a capability tool returns.
type ToolResult struct {
	Capability ports.Label `json:"capability" yaml:"capability"`
	Response   string      `json:"response" yaml:"response"`
}

type capabilityToolArgs struct {
	Message string `json:"message"`
}

// CapabilityTool runs a single capability directly, bypassing classification.
// Invocations read the conversation but never record turns.
type CapabilityTool struct {
	capability ports.Capability
	history    ports.HistoryView
	validator  *JSONValidator
}

func NewCapabilityTool(capability ports.Capability, history ports.HistoryView) *CapabilityTool {
	return &CapabilityTool{
		capability: capability,
		history:    history,
		validator:  NewJSONValidator(),
	}
}

func (t *CapabilityTool) Name() string { return t.capability.Name().String() }

func (t *CapabilityTool) Schema() []byte { return capabilityToolSchema }

// Spec describes the tool for listings.
func (t *CapabilityTool) Spec() ports.ToolSpec {
	return ports.ToolSpec{
		Name:        t.Name(),
		Description: t.capability.Description(),
		JSONSchema:  capabilityToolSchema,
	}
}

// Invoke validates args against the tool schema and executes the capability.
func (t *CapabilityTool) Invoke(ctx context.Context, args json.RawMessage) (any, error) {
	if err := t.validator.Validate(args, capabilityToolSchema); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", t.Name(), err)
	}

	var parsed capabilityToolArgs
	if err := json.Unmarshal(args, &parsed); err != nil {
		return nil, fmt.Errorf("decode arguments for %s: %w", t.Name(), err)
	}

	response, err := t.capability.Execute(ctx, parsed.Message, t.history)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", t.Name(), err)
	}
	return ToolResult{Capability: t.capability.Name(), Response: response}, nil
}

// JSONValidator handles JSON schema validation.
type JSONValidator struct{}

// NewJSONValidator creates a new JSON validator.
func NewJSONValidator() *JSONValidator {
	return &JSONValidator{}
}

// Validate checks if JSON data conforms to a schema.
func (v *JSONValidator) Validate(data json.RawMessage, schema []byte) error {
	if len(schema) == 0 {
		return nil
	}

	if !json.Valid(data) {
		return fmt.Errorf("data is not valid JSON")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("schema validation errors: %s", strings.Join(problems, "; "))
	}

	return nil
}

var _ ports.Tool = (*CapabilityTool)(nil)
