package main

import (
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/capagent/capagent/agent"
	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [capability] [json-args]",
	Short: "Run one capability directly with JSON arguments",
	Long: `Skips classification and runs the named capability as a tool.
Arguments must match {"message": string}.`,
	Example: `  capagent invoke calculator '{"message": "2 * (3 + 4)"}'`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := ag.Tool(args[0])
		if err != nil {
			return err
		}

		result, err := tool.Invoke(cmd.Context(), json.RawMessage(args[1]))
		if err != nil {
			return err
		}

		if r, ok := result.(agent.ToolResult); ok {
			fmt.Fprintln(cmd.OutOrStdout(), r.Response)
			return nil
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	},
}
