package main

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/capagent/capagent/render"
	"github.com/spf13/cobra"
)

var (
	askHTML bool
	askRaw  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send a single message and print the reply",
	Example: `  capagent ask "calculate 15 * 7"
  capagent ask --html "write a python function"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askHTML, "html", false, "Render the reply as an HTML fragment")
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "Print the reply without terminal styling")
}

func runAsk(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	reply := ag.ProcessMessage(cmd.Context(), message)

	out := cmd.OutOrStdout()
	switch {
	case askHTML:
		html, err := render.HTML(reply)
		if err != nil {
			return err
		}
		fmt.Fprint(out, html)
	case askRaw:
		fmt.Fprintln(out, reply)
	default:
		term, err := render.NewTerminal(cfg.Render.Style, cfg.Render.WordWrap)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, term.Render(reply))
	}
	return nil
}
