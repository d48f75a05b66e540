package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/capagent/capagent"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// ErrNoConfigFile is returned by Watch when the config came from defaults only.
var ErrNoConfigFile = errors.New("no config file in use")

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Agent        AgentConfig        `mapstructure:"agent"`
	Capabilities CapabilitiesConfig `mapstructure:"capabilities"`
	Log          LogConfig          `mapstructure:"log"`
	Render       RenderConfig       `mapstructure:"render"`

	v *viper.Viper
}

// AgentConfig stores agent behaviour settings.
type AgentConfig struct {
	SessionPrefix    string `mapstructure:"session_prefix"`    // Prefix for generated session ids
	WelcomeTurn      bool   `mapstructure:"welcome_turn"`      // Seed history with the welcome message
	EnableTracing    bool   `mapstructure:"enable_tracing"`    // Span/event logging
	EnableMetrics    bool   `mapstructure:"enable_metrics"`    // Per-capability metrics
	RandomSeed       uint64 `mapstructure:"random_seed"`       // 0 picks a random seed
	BatchConcurrency int    `mapstructure:"batch_concurrency"` // Max concurrent messages in a batch
}

// CapabilitiesConfig stores settings for individual capabilities.
type CapabilitiesConfig struct {
	WeatherLocation string `mapstructure:"weather_location"` // Name shown in weather reports
	Timezone        string `mapstructure:"timezone"`         // IANA zone; empty uses the system zone
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// RenderConfig stores terminal rendering settings.
type RenderConfig struct {
	Style    string `mapstructure:"style"`     // glamour style name, "auto" detects
	WordWrap int    `mapstructure:"word_wrap"` // 0 disables wrapping
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.AutomaticEnv()
	// agent.random_seed becomes AGENT_RANDOM_SEED
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Defaults are enough to run.
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	// Agent defaults
	v.SetDefault("agent.session_prefix", "")
	v.SetDefault("agent.welcome_turn", false)
	v.SetDefault("agent.enable_tracing", true)
	v.SetDefault("agent.enable_metrics", true)
	v.SetDefault("agent.random_seed", 0)
	v.SetDefault("agent.batch_concurrency", internal.DefaultBatchConcurrency)

	// Capability defaults
	v.SetDefault("capabilities.weather_location", internal.DefaultWeatherLocation)
	v.SetDefault("capabilities.timezone", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	// Render defaults
	v.SetDefault("render.style", "auto")
	v.SetDefault("render.word_wrap", 80)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.v = v
	return &cfg, nil
}

// FileUsed returns the config file that was read, or "" when only defaults apply.
func (c *Config) FileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// Watch re-reads the config file whenever it changes and hands the new
// configuration to onChange. Decode failures are logged and skipped.
func Watch(cfg *Config, logger zerolog.Logger, onChange func(*Config)) error {
	if cfg.FileUsed() == "" {
		return ErrNoConfigFile
	}

	cfg.v.OnConfigChange(func(e fsnotify.Event) {
		next, err := decode(cfg.v)
		if err != nil {
			logger.Error().Err(err).Str("file", e.Name).Msg("Failed to reload config")
			return
		}
		logger.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("Config reloaded")
		onChange(next)
	})
	cfg.v.WatchConfig()

	return nil
}

// ParseLevel maps the configured log level to zerolog, defaulting to info.
func (c LogConfig) ParseLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
