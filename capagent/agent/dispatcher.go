package agent

import (
	"context"
	"errors"
	"fmt"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

// ErrUnknownCapability is returned by Lookup for labels with no registered handler.
var ErrUnknownCapability = errors.New("unknown capability")

// Registry holds capabilities by label and remembers registration order.
type Registry struct {
	byLabel map[ports.Label]ports.Capability
	order   []ports.Label
}

// NewRegistry registers caps in order. A later capability with the same label
// replaces the earlier one but keeps its position.
func NewRegistry(caps ...ports.Capability) *Registry {
	r := &Registry{byLabel: make(map[ports.Label]ports.Capability, len(caps))}
	for _, c := range caps {
		if _, exists := r.byLabel[c.Name()]; !exists {
			r.order = append(r.order, c.Name())
		}
		r.byLabel[c.Name()] = c
	}
	return r
}

// Lookup returns the capability registered under label.
func (r *Registry) Lookup(label ports.Label) (ports.Capability, error) {
	c, ok := r.byLabel[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCapability, label)
	}
	return c, nil
}

// All returns the capabilities in registration order.
func (r *Registry) All() []ports.Capability {
	caps := make([]ports.Capability, 0, len(r.order))
	for _, label := range r.order {
		caps = append(caps, r.byLabel[label])
	}
	return caps
}

// Dispatcher routes a classified message to its capability or to the fallback responder.
type Dispatcher struct {
	registry *Registry
	fallback *FallbackResponder
	tracer   ports.Tracer
}

func NewDispatcher(registry *Registry, fallback *FallbackResponder, tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		fallback: fallback,
		tracer:   tracer,
	}
}

// Dispatch runs the capability for intent. General intents and labels without a
// registered capability get a fallback response.
func (d *Dispatcher) Dispatch(ctx context.Context, intent Intent, message string, history ports.HistoryView) (response string, err error) {
	ctx, finish := d.tracer.StartSpan(ctx, "dispatch", map[string]any{
		"capability": intent.Capability.String(),
	})
	defer func() { finish(err) }()

	if intent.Capability == ports.LabelGeneral {
		return d.fallback.Respond(message), nil
	}

	capability, err := d.registry.Lookup(intent.Capability)
	if err != nil {
		d.tracer.Event(ctx, "capability_missing", map[string]any{"capability": intent.Capability.String()})
		return d.fallback.Respond(message), nil
	}

	response, err = capability.Execute(ctx, message, history)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", intent.Capability, err)
	}
	return response, nil
}
