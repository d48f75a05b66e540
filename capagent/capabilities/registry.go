// Package capabilities holds the canned handlers the agent dispatches to.
package capabilities

import (
	"time"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

// Options carries the collaborators some capabilities need.
type Options struct {
	Clock           ports.Clock
	Random          ports.RandomSource
	WeatherLocation string
	Zone            *time.Location // nil selects the system zone
	ZoneName        string
}

// Default returns the six capabilities in their canonical order.
func Default(opts Options) []ports.Capability {
	return []ports.Capability{
		NewCalculator(),
		NewFileOps(),
		NewWebSearch(),
		NewTextProcessor(),
		NewTimeWeather(opts.Clock, opts.Random, opts.WeatherLocation, opts.Zone, opts.ZoneName),
		NewCodeGenerator(),
	}
}
