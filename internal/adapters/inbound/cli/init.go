package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ordersweep/ordersweep/internal/adapters/outbound/config"
	"github.com/ordersweep/ordersweep/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate an ordersweep.yaml configuration file",
		Long:  "Create an ordersweep.yaml with the default store roster as a starting point.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			dest := filepath.Join(path, config.FileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing ordersweep.yaml")

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()

	result := "# OrderSweep configuration\n# API keys are read from the environment variable named by api_key_env\n# (a .env file in the working directory is loaded if present).\n\nstores:\n"
	for _, s := range cfg.Stores {
		result += fmt.Sprintf("  - subdomain: %s\n    api_key_env: %s\n", s.Subdomain, s.APIKeyEnv)
	}
	result += fmt.Sprintf("\nlog_file: %s\n", cfg.LogFile)
	return result
}
