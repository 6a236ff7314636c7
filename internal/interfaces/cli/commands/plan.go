package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelworks/mrpplan/internal/application/orchestration"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/memory"
	"github.com/kestrelworks/mrpplan/internal/interfaces/cli/output"
)

func newPlanCommand() *cobra.Command {
	var (
		scenarioDir string
		customers   []string
		asOfFlag    string
		asOfPolicy  string
		format      string
		outputDir   string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the full planning pipeline and print every output table",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := loadViper()
			if scenarioDir == "" {
				scenarioDir = v.GetString("scenario_dir")
			}
			if scenarioDir == "" {
				return fmt.Errorf("--scenario is required (or set %s_SCENARIO_DIR)", envPrefix)
			}

			req, err := loadScenario(scenarioDir)
			if err != nil {
				return err
			}
			req.CustomerFilter = customers

			if asOfPolicy == "source-legacy" {
				// leave req.AsOfDate zero: the orchestrator falls back
				// to the earliest filtered demand date, a legacy
				// convention kept only for parity testing against
				// older scenario data.
			} else {
				asOf, err := resolveAsOf(asOfFlag, v)
				if err != nil {
					return fmt.Errorf("invalid --as-of date: %w", err)
				}
				req.AsOfDate = asOf
			}

			orch := orchestration.NewPlanningOrchestrator(
				memory.NewItemRepository(),
				memory.NewBOMRepository(),
				memory.NewInventoryRepository(),
				memory.NewDemandRepository(),
				memory.NewPurchaseRepository(),
			)

			result, err := orch.Run(*req)
			if err != nil {
				return fmt.Errorf("planning run failed: %w", err)
			}

			return output.Render(result, output.Config{Format: format, OutputDir: outputDir, Verbose: verbose})
		},
	}

	cmd.Flags().StringVar(&scenarioDir, "scenario", "", "scenario directory containing the five input CSVs")
	cmd.Flags().StringSliceVar(&customers, "customer", nil, "customer(s) whose sales orders feed this run (required, non-empty)")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "as-of date (YYYY-MM-DD) for the expedite/purchase split; default wall-clock today")
	cmd.Flags().StringVar(&asOfPolicy, "as-of-policy", "wall-clock", "as-of policy: wall-clock or source-legacy")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, csv")
	cmd.Flags().StringVar(&outputDir, "output", "", "write json/csv output files here instead of stdout (text always prints)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print every transaction row in text output")

	return cmd
}
