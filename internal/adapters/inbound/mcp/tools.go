package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ordersweep/ordersweep/internal/adapters/outbound/brightsites"
	"github.com/ordersweep/ordersweep/internal/adapters/outbound/config"
	"github.com/ordersweep/ordersweep/internal/adapters/outbound/logging"
	"github.com/ordersweep/ordersweep/internal/application"
	"github.com/ordersweep/ordersweep/internal/clock"
)

// registerTools registers all OrderSweep MCP tools on the given server.
func registerTools(s *server.MCPServer, configPath string) {
	// 1. ordersweep_stores
	s.AddTool(
		mcplib.NewTool("ordersweep_stores",
			mcplib.WithDescription("Returns the configured store roster and whether each API key resolves (keys are never included)"),
		),
		handleStores(configPath),
	)

	// 2. ordersweep_preview
	s.AddTool(
		mcplib.NewTool("ordersweep_preview",
			mcplib.WithDescription("Runs a dry sweep pass (fetch and evaluate, no updates sent) and returns the run report as JSON"),
		),
		handlePreview(configPath),
	)
}

type storeStatus struct {
	Subdomain   string `json:"subdomain"`
	APIKeyEnv   string `json:"api_key_env"`
	KeyResolved bool   `json:"key_resolved"`
}

func handleStores(configPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(configPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading configuration: %v", err)), nil
		}

		statuses := make([]storeStatus, 0, len(cfg.Stores))
		for _, store := range cfg.Stores {
			statuses = append(statuses, storeStatus{
				Subdomain:   store.Subdomain,
				APIKeyEnv:   store.APIKeyEnv,
				KeyResolved: store.APIKey != "",
			})
		}
		return jsonResult(statuses)
	}
}

func handlePreview(configPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(configPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading configuration: %v", err)), nil
		}

		// The preview does not touch the run log.
		logger := logging.NewNop()
		gateway := brightsites.New(logger)
		svc := application.NewSweepService(gateway, logger, clock.NewSystem())

		report := svc.Run(ctx, cfg, application.RunOptions{DryRun: true})
		return jsonResult(report)
	}
}

// jsonResult marshals v as an indented JSON text content block.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool-level error content block.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
