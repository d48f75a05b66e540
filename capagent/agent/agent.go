// Package agent classifies chat messages, dispatches them to canned capabilities
// and keeps the conversation they belong to.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/capagent/capagent"
	"github.com/ZanzyTHEbar/capagent/capagent/agent/adapters"
	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/ZanzyTHEbar/capagent/capagent/capabilities"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

// WelcomeMessage is the greeting shown before the first user message.
const WelcomeMessage = "Hello! I'm your AI Agent assistant. I can help you with calculations, file operations, web searches, text processing, time/weather information, and code generation. What would you like me to help you with?"

const apologyFormat = "I apologize, but I encountered an error: %s. Could you please try rephrasing your request?"

// CapabilityInfo describes one registered capability.
type CapabilityInfo struct {
	Name        ports.Label `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
}

// Options configures an Agent. Zero values select defaults.
type Options struct {
	Logger           zerolog.Logger
	Tracer           ports.Tracer
	Clock            ports.Clock
	Random           ports.RandomSource
	Metrics          *MetricsCollector // nil disables metrics
	Capabilities     []ports.Capability
	SessionPrefix    string
	WelcomeTurn      bool
	BatchConcurrency int
}

// Agent is the entry point for chat messages. It is safe for concurrent use.
type Agent struct {
	classifier *Classifier
	registry   *Registry
	dispatcher *Dispatcher
	conv       *Conversation
	clock      ports.Clock
	tracer     ports.Tracer
	metrics    *MetricsCollector
	logger     zerolog.Logger

	batchConcurrency int
}

// New creates an agent with a fresh conversation.
func New(opts Options) *Agent {
	if opts.Clock == nil {
		opts.Clock = adapters.SystemClock{}
	}
	if opts.Random == nil {
		opts.Random = adapters.NewMathRandom(0)
	}
	if opts.Tracer == nil {
		opts.Tracer = &noOpTracer{}
	}
	if opts.Capabilities == nil {
		opts.Capabilities = capabilities.Default(capabilities.Options{
			Clock:  opts.Clock,
			Random: opts.Random,
		})
	}
	if opts.BatchConcurrency < 1 {
		opts.BatchConcurrency = capagent.DefaultBatchConcurrency
	}

	registry := NewRegistry(opts.Capabilities...)
	a := &Agent{
		classifier:       NewClassifier(),
		registry:         registry,
		dispatcher:       NewDispatcher(registry, NewFallbackResponder(opts.Random), opts.Tracer),
		conv:             NewConversation(opts.SessionPrefix),
		clock:            opts.Clock,
		tracer:           opts.Tracer,
		metrics:          opts.Metrics,
		logger:           opts.Logger.With().Str("component", "agent").Logger(),
		batchConcurrency: opts.BatchConcurrency,
	}

	if opts.WelcomeTurn {
		a.conv.Append(ports.Turn{
			Role:      ports.RoleAgent,
			Content:   WelcomeMessage,
			Timestamp: a.clock.Now(),
		})
	}

	a.logger.Debug().
		Str("session_id", a.conv.SessionID()).
		Int("capabilities", len(registry.All())).
		Msg("Agent created")
	return a
}

// ProcessMessage answers one user message. It records the user turn and the
// agent turn together and always returns text; failures become an apology.
func (a *Agent) ProcessMessage(ctx context.Context, message string) string {
	userTurn := ports.Turn{
		Role:      ports.RoleUser,
		Content:   message,
		Timestamp: a.clock.Now(),
	}

	ctx, finish := a.tracer.StartSpan(ctx, "process_message", map[string]any{
		"session_id": a.conv.SessionID(),
	})

	start := time.Now()
	label, response, err := a.handle(ctx, message, userTurn)
	elapsed := time.Since(start)

	agentTurn := ports.Turn{
		Role:       ports.RoleAgent,
		Content:    response,
		Timestamp:  a.clock.Now(),
		Capability: label,
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("capability", label.String()).Msg("Message processing failed")
		agentTurn.Content = fmt.Sprintf(apologyFormat, err.Error())
		agentTurn.Capability = ""
		agentTurn.IsError = true
	}

	a.conv.Append(userTurn, agentTurn)

	if a.metrics != nil && label != "" {
		a.metrics.RecordDispatch(label, elapsed, err)
	}
	finish(err)

	return agentTurn.Content
}

// handle classifies and dispatches one message, turning a panic into an error.
func (a *Agent) handle(ctx context.Context, message string, userTurn ports.Turn) (label ports.Label, response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
			} else {
				err = fmt.Errorf("%v", r)
			}
			response = ""
			a.tracer.Event(ctx, "handler_panic", map[string]any{
				"capability": label.String(),
				"panic":      err.Error(),
			})
			if a.metrics != nil {
				a.metrics.RecordPanic()
			}
		}
	}()

	intent := a.classifier.Classify(message)
	label = intent.Capability
	a.tracer.Event(ctx, "intent_classified", map[string]any{
		"capability": label.String(),
		"confidence": intent.Confidence,
	})

	response, err = a.dispatcher.Dispatch(ctx, intent, message, pendingView{conv: a.conv, pending: userTurn})
	if err != nil {
		a.tracer.Event(ctx, "capability_failed", map[string]any{
			"capability": label.String(),
			"error":      err.Error(),
		})
		return label, "", err
	}
	return label, response, nil
}

// ProcessBatch processes messages concurrently and returns the responses in
// input order. Each message still commits its own pair of turns.
func (a *Agent) ProcessBatch(ctx context.Context, messages []string) []string {
	results := make([]string, len(messages))

	p := pool.New().WithMaxGoroutines(a.batchConcurrency)
	for i, message := range messages {
		p.Go(func() {
			results[i] = a.ProcessMessage(ctx, message)
		})
	}
	p.Wait()

	return results
}

// Classify exposes the classifier without recording anything.
func (a *Agent) Classify(message string) Intent {
	return a.classifier.Classify(message)
}

// Rules returns the classification table in evaluation order.
func (a *Agent) Rules() []Rule {
	return a.classifier.Rules()
}

// Capabilities lists the registered capabilities in canonical order.
func (a *Agent) Capabilities() []CapabilityInfo {
	caps := a.registry.All()
	infos := make([]CapabilityInfo, 0, len(caps))
	for _, c := range caps {
		infos = append(infos, CapabilityInfo{Name: c.Name(), Description: c.Description()})
	}
	return infos
}

// Capability returns the registered capability for label.
func (a *Agent) Capability(label ports.Label) (ports.Capability, error) {
	return a.registry.Lookup(label)
}

// Conversation returns the agent's conversation context.
func (a *Agent) Conversation() *Conversation {
	return a.conv
}

// History returns a copy of the recorded turns, oldest first.
func (a *Agent) History() []ports.Turn {
	return a.conv.Turns()
}

// Stats returns the collected metrics. It is empty when metrics are disabled.
func (a *Agent) Stats() MetricsSummary {
	if a.metrics == nil {
		return MetricsSummary{Capabilities: map[ports.Label]CapabilityStats{}}
	}
	return a.metrics.GetSummary()
}

// Tools exposes every registered capability as a JSON tool.
func (a *Agent) Tools() []ports.Tool {
	caps := a.registry.All()
	tools := make([]ports.Tool, 0, len(caps))
	for _, c := range caps {
		tools = append(tools, NewCapabilityTool(c, a.conv))
	}
	return tools
}

// Tool returns the tool for the capability named name.
func (a *Agent) Tool(name string) (ports.Tool, error) {
	c, err := a.registry.Lookup(ports.Label(name))
	if err != nil {
		return nil, err
	}
	return NewCapabilityTool(c, a.conv), nil
}

// IsUnknownCapability reports whether err came from looking up an unregistered label.
func IsUnknownCapability(err error) bool {
	return errors.Is(err, ErrUnknownCapability)
}
