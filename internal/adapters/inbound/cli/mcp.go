package cli

import (
	mcpadapter "github.com/ordersweep/ordersweep/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the OrderSweep MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the OrderSweep MCP server (stdio)",
		Long: "Start the OrderSweep MCP server using stdio transport. This lets AI assistants " +
			"inspect the store roster and preview a sweep without sending any updates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewOrderSweepMCPServer(configPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to ordersweep.yaml")

	return cmd
}
