package agentports

import (
	"context"
	"encoding/json"
)

// ToolSpec describes a callable tool.
type ToolSpec struct {
	Name        string // unique logical name
	Description string // concise doc for selection
	JSONSchema  []byte // JSON schema for args
}

// Tool defines the runtime that executes a tool call with JSON arguments.
type Tool interface {
	Name() string
	Schema() []byte
	Invoke(ctx context.Context, args json.RawMessage) (any, error)
}
