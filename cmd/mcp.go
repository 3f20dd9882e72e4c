package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the program as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stdout belongs to the MCP transport; keep logs on stderr only.
		logrus.SetOutput(cmd.ErrOrStderr())

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		return mcpserver.Run(cmd.Context(), eng)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
