package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ordersweep/ordersweep/internal/adapters/outbound/brightsites"
	"github.com/ordersweep/ordersweep/internal/adapters/outbound/config"
	"github.com/ordersweep/ordersweep/internal/adapters/outbound/logging"
	"github.com/ordersweep/ordersweep/internal/adapters/outbound/tui"
	"github.com/ordersweep/ordersweep/internal/application"
	"github.com/ordersweep/ordersweep/internal/clock"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
		baseURL    string
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Perform one sweep pass over all configured stores",
		Long: "Fetch each configured store's orders, evaluate the status-and-age predicate, " +
			"and update eligible orders to 'in_progress'. Partial failures are logged and " +
			"never fail the process; only startup problems (config, log file) do.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			if logFile == "" {
				logFile = cfg.LogFile
			}
			logger, err := logging.Open(logFile)
			if err != nil {
				return fmt.Errorf("opening run log: %w", err)
			}
			defer logger.Close()

			var opts []brightsites.Option
			if baseURL != "" {
				opts = append(opts, brightsites.WithBaseURL(baseURL))
			}
			gateway := brightsites.New(logger, opts...)

			svc := application.NewSweepService(gateway, logger, clock.NewSystem())
			report := svc.Run(cmd.Context(), cfg, application.RunOptions{DryRun: dryRun})

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to ordersweep.yaml (default ./ordersweep.yaml, built-in roster if absent)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Run log path (default from config)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the platform base URL (staging/testing)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate and log, but send no update calls")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")

	return cmd
}
