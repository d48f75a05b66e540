package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/capagent/capagent/agent"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	outputFormat string

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameColumn  = lipgloss.NewStyle().Width(16)
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List the registered capabilities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := ag.Capabilities()
		out := cmd.OutOrStdout()

		switch outputFormat {
		case "table", "":
			writeCapabilityTable(out, infos)
			return nil
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(infos)
		default:
			return fmt.Errorf("unknown output format %q (want table, json or yaml)", outputFormat)
		}
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the intent classification rules in evaluation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Rules (first match wins)"))
		for i, rule := range ag.Rules() {
			fmt.Fprintf(out, "%d. %s %.1f  %s\n", i+1, nameColumn.Render(rule.Capability.String()), rule.Confidence, rule.Pattern.String())
		}
		fmt.Fprintf(out, "%d. %s %.1f  (no match)\n", len(ag.Rules())+1, nameColumn.Render("general"), agent.GeneralConfidence)
		return nil
	},
}

func init() {
	capabilitiesCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json or yaml")
}

func writeCapabilityTable(out io.Writer, infos []agent.CapabilityInfo) {
	fmt.Fprintln(out, headerStyle.Render("Capabilities"))
	for _, info := range infos {
		fmt.Fprintf(out, "%s %s\n", nameColumn.Render(info.Name.String()), info.Description)
	}
}
