package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/cmd/dashboard/ui"
	"github.com/light-bringer/incentive-tracker/internal/config"
	"github.com/light-bringer/incentive-tracker/internal/logging"
	"github.com/light-bringer/incentive-tracker/internal/services"
)

// app carries the state shared by every command.
type app struct {
	// Global flags
	configPath string
	seedPath   string
	verbose    bool

	// options lets tests inject a clock or fixed tables.
	options []services.Option

	svc      *services.ServiceOptions
	renderer *ui.Renderer
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Brand incentive program tracker",
		Long: `Tracks sell-in, sell-out and cashback incentive programs per brand.

Records are loaded from a YAML seed (the built-in sample set by default) and
kept in memory for the duration of the command.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.svc != nil {
				a.svc.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.seedPath, "seed", "", "path to a YAML record set (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSummaryCmd(a),
		newBrandsCmd(a),
		newProgramsCmd(a),
		newProgramCmd(a),
		newApplyCmd(a),
		newEventsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.seedPath != "" {
		cfg.SeedPath = a.seedPath
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.svc, err = services.NewServiceOptions(cfg, logger, a.options...)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	a.renderer = ui.NewRenderer(a.svc.Formatter)

	logger.Debug("dashboard ready",
		zap.String("command", cmd.Name()),
		zap.String("delete_policy", string(cfg.DeletePolicy)),
		zap.String("id_strategy", string(cfg.IDStrategy)),
	)
	return nil
}
