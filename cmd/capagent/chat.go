package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/ZanzyTHEbar/capagent/capagent/agent"
	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/ZanzyTHEbar/capagent/capagent/config"
	"github.com/ZanzyTHEbar/capagent/capagent/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	userLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	agentLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	faintStyle      = lipgloss.NewStyle().Faint(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat",
	Long: `Reads one message per line and prints the agent's reply.

Commands:
  /capabilities  list capabilities
  /stats         show dispatch metrics
  /history       show the conversation so far
  /quit          leave (also /exit or EOF)`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	term, err := render.NewTerminal(cfg.Render.Style, cfg.Render.WordWrap)
	if err != nil {
		return err
	}
	var renderer atomic.Pointer[render.Terminal]
	renderer.Store(term)

	if cfg.FileUsed() != "" {
		err := config.Watch(cfg, logger, func(next *config.Config) {
			t, err := render.NewTerminal(next.Render.Style, next.Render.WordWrap)
			if err != nil {
				logger.Warn().Err(err).Msg("Keeping previous render settings")
				return
			}
			renderer.Store(t)
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Config hot reload disabled")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, faintStyle.Render("session "+ag.Conversation().SessionID()))
	printAgent(out, renderer.Load(), ports.Turn{Role: ports.RoleAgent, Content: agent.WelcomeMessage})

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, userLabelStyle.Render("You: "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := runChatCommand(out, line); quit {
				return nil
			}
			continue
		}

		ag.ProcessMessage(cmd.Context(), line)
		if last, ok := ag.Conversation().Last(); ok {
			printAgent(out, renderer.Load(), last)
		}
	}
}

func runChatCommand(out io.Writer, line string) (quit bool) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case "/quit", "/exit":
		return true
	case "/capabilities":
		writeCapabilityTable(out, ag.Capabilities())
	case "/stats":
		writeStats(out, ag.Stats())
	case "/history":
		for _, turn := range ag.History() {
			label := turn.Role.String()
			if turn.Capability != "" {
				label += " [" + turn.Capability.String() + "]"
			}
			fmt.Fprintf(out, "%s %s\n", faintStyle.Render(turn.Timestamp.Format("15:04:05")+" "+label+":"), turn.Content)
		}
	default:
		fmt.Fprintln(out, errorLabelStyle.Render("unknown command: "+line))
	}
	return false
}

func printAgent(out io.Writer, term *render.Terminal, turn ports.Turn) {
	label := agentLabelStyle.Render("Agent:")
	if turn.IsError {
		label = errorLabelStyle.Render("Agent:")
	}
	if turn.Capability != "" {
		label += " " + faintStyle.Render(turn.Capability.String())
	}
	fmt.Fprintln(out, label)
	fmt.Fprintln(out, term.Render(turn.Content))
}

func writeStats(out io.Writer, stats agent.MetricsSummary) {
	fmt.Fprintf(out, "messages: %d  errors: %d  panics: %d  p50: %s  p95: %s  p99: %s\n",
		stats.Messages, stats.Errors, stats.Panics, stats.Latency.P50, stats.Latency.P95, stats.Latency.P99)

	for _, info := range ag.Capabilities() {
		writeCapabilityStats(out, info.Name, stats.Capabilities[info.Name])
	}
	writeCapabilityStats(out, ports.LabelGeneral, stats.Capabilities[ports.LabelGeneral])
}

func writeCapabilityStats(out io.Writer, label ports.Label, s agent.CapabilityStats) {
	if s.Requests == 0 {
		return
	}
	fmt.Fprintf(out, "  %s requests: %d  errors: %d  p95: %s\n",
		nameColumn.Render(label.String()), s.Requests, s.Errors, s.Latency.P95)
}
