package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZanzyTHEbar/capagent/capagent/agent"
	"github.com/ZanzyTHEbar/capagent/capagent/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger zerolog.Logger
	ag     *agent.Agent
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "capagent",
	Short: "capagent - a keyword-routed chat agent with canned capabilities",
	Long: `capagent routes each message to one of six capabilities by keyword:
calculator, file operations, web search, text processing, time/weather and
code generation. Everything except arithmetic is simulated.

Run without arguments to start the interactive chat.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logger = newLogger(cmd.ErrOrStderr(), cfg.Log)

		ag, err = agent.NewFactory(cfg, logger).CreateAgent()
		if err != nil {
			return fmt.Errorf("failed to create agent: %w", err)
		}
		return nil
	},
	RunE: runChat,
}

func newLogger(w io.Writer, logCfg config.LogConfig) zerolog.Logger {
	level := logCfg.ParseLevel()
	if verbose {
		level = zerolog.DebugLevel
	}

	if logCfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: search ., .., etc/capagent, user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(chatCmd, askCmd, invokeCmd, capabilitiesCmd, rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
