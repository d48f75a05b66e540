package capagent

import (
	"os"
	"path/filepath"
)

const (
	DefaultAppName = "capagent"

	// DefaultWeatherLocation is reported by the simulated weather capability when
	// no location is configured.
	DefaultWeatherLocation = "Your Location"

	DefaultBatchConcurrency = 4
)

// DefaultConfigPath is the per-user configuration directory.
var DefaultConfigPath = filepath.Join(userConfigDir(), DefaultAppName)

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}
