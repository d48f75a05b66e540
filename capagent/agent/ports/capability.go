package agentports

import "context"

// Label identifies the capability a message is routed to.
type Label string

const (
	LabelCalculator    Label = "calculator"
	LabelFileOps       Label = "fileOps"
	LabelWebSearch     Label = "webSearch"
	LabelTextProcessor Label = "textProcessor"
	LabelTimeWeather   Label = "timeWeather"
	LabelCodeGenerator Label = "codeGenerator"
	// LabelGeneral routes to the fallback responder; no capability is registered under it.
	LabelGeneral Label = "general"
)

func (l Label) String() string { return string(l) }

// Capability is a canned handler for one kind of request.
// Implementations must not mutate history; recording turns is the agent's job.
type Capability interface {
	Name() Label
	Description() string
	Execute(ctx context.Context, message string, history HistoryView) (string, error)
}
