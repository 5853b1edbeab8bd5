package cli

import (
	"fmt"

	"github.com/ordersweep/ordersweep/internal/adapters/outbound/config"
	"github.com/spf13/cobra"
)

func newStoresCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stores",
		Short: "List configured stores and whether their API keys resolve",
		Long:  "Show the store roster with the environment variable each API key comes from. Key values are never printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			for _, store := range cfg.Stores {
				keyState := "key resolved"
				if store.APIKey == "" {
					keyState = "key missing"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-34s %s\n", store.Subdomain, store.APIKeyEnv, keyState)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to ordersweep.yaml")

	return cmd
}
