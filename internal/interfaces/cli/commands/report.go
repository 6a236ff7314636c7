package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelworks/mrpplan/internal/application/orchestration"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/memory"
	"github.com/kestrelworks/mrpplan/internal/interfaces/cli/output"
)

// newReportCommand runs the same full pipeline as plan but renders
// only the transaction/inventory tables, for callers that
// only care about the flattened report and not expedites/purchases.
func newReportCommand() *cobra.Command {
	var (
		scenarioDir string
		customers   []string
		asOfFlag    string
		format      string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline and print only the transaction report and ending inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := loadViper()
			if scenarioDir == "" {
				return fmt.Errorf("--scenario is required")
			}

			req, err := loadScenario(scenarioDir)
			if err != nil {
				return err
			}
			req.CustomerFilter = customers

			asOf, err := resolveAsOf(asOfFlag, v)
			if err != nil {
				return fmt.Errorf("invalid --as-of date: %w", err)
			}
			req.AsOfDate = asOf

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

			// Report is plan output with the action tables suppressed.
			result.Expedites = nil
			result.Purchases = nil

			return output.Render(result, output.Config{Format: format, OutputDir: outputDir})
		},
	}

	cmd.Flags().StringVar(&scenarioDir, "scenario", "", "scenario directory containing the five input CSVs")
	cmd.Flags().StringSliceVar(&customers, "customer", nil, "customer(s) whose sales orders feed this run (required, non-empty)")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "as-of date (YYYY-MM-DD); default wall-clock today")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, csv")
	cmd.Flags().StringVar(&outputDir, "output", "", "write json/csv output files here instead of stdout (text always prints)")

	return cmd
}
