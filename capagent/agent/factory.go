package agent

import (
	"context"

	"github.com/ZanzyTHEbar/capagent/capagent/agent/adapters"
	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/ZanzyTHEbar/capagent/capagent/capabilities"
	"github.com/ZanzyTHEbar/capagent/capagent/config"
	"github.com/rs/zerolog"
)

// Factory creates and wires agent components from configuration.
type Factory struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewFactory creates a new agent factory.
func NewFactory(cfg *config.Config, logger zerolog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateAgent creates a fully wired Agent from config.
func (f *Factory) CreateAgent() (*Agent, error) {
	clock := adapters.SystemClock{}
	random := f.createRandom()

	caps, err := f.CreateCapabilities(clock, random)
	if err != nil {
		return nil, err
	}

	return New(Options{
		Logger:           f.logger,
		Tracer:           f.createTracer(),
		Clock:            clock,
		Random:           random,
		Metrics:          f.createMetrics(),
		Capabilities:     caps,
		SessionPrefix:    f.cfg.Agent.SessionPrefix,
		WelcomeTurn:      f.cfg.Agent.WelcomeTurn,
		BatchConcurrency: f.batchConcurrency(),
	}), nil
}

// CreateCapabilities builds the default capabilities with the configured
// weather location and timezone.
func (f *Factory) CreateCapabilities(clock ports.Clock, random ports.RandomSource) ([]ports.Capability, error) {
	zone, zoneName, err := capabilities.LoadZone(f.cfg.Capabilities.Timezone)
	if err != nil {
		return nil, err
	}

	return capabilities.Default(capabilities.Options{
		Clock:           clock,
		Random:          random,
		WeatherLocation: f.cfg.Capabilities.WeatherLocation,
		Zone:            zone,
		ZoneName:        zoneName,
	}), nil
}

func (f *Factory) createRandom() ports.RandomSource {
	return adapters.NewMathRandom(f.cfg.Agent.RandomSeed)
}

// createTracer creates a tracer adapter from config.
func (f *Factory) createTracer() ports.Tracer {
	if !f.cfg.Agent.EnableTracing {
		return &noOpTracer{}
	}

	return adapters.NewZerologTracer(f.logger)
}

func (f *Factory) createMetrics() *MetricsCollector {
	if !f.cfg.Agent.EnableMetrics {
		return nil
	}
	return NewMetricsCollector()
}

func (f *Factory) batchConcurrency() int {
	n := f.cfg.Agent.BatchConcurrency
	if n < 1 {
		f.logger.Warn().Int("batch_concurrency", n).Msg("batch_concurrency clamped to minimum of 1")
		return 1
	}
	return n
}

// noOpTracer implements Tracer interface with no-op behavior.
type noOpTracer struct{}

func (t *noOpTracer) StartSpan(ctx context.Context, name string, attrs map[string]any) (context.Context, func(err error)) {
	return ctx, func(err error) {}
}

func (t *noOpTracer) Event(ctx context.Context, name string, attrs map[string]any) {}

var _ ports.Tracer = (*noOpTracer)(nil)
