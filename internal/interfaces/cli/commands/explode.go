package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kestrelworks/mrpplan/internal/application/services/bomexplode"
	"github.com/kestrelworks/mrpplan/internal/application/services/bomgraph"
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/memory"
)

// newExplodeCommand exposes the BOM build and explosion in isolation:
// the hierarchy for a set of customers' demanded top-level items,
// without running the MRP sweep. Useful for inspecting structure and
// cycles before committing to a full planning run.
func newExplodeCommand() *cobra.Command {
	var (
		scenarioDir string
		customers   []string
	)

	cmd := &cobra.Command{
		Use:   "explode",
		Short: "Explode the BOM hierarchy for the demanded top-level items without planning",
		RunE: func(cmd *cobra.Command, args []string) error {
			if scenarioDir == "" {
				return fmt.Errorf("--scenario is required")
			}
			req, err := loadScenario(scenarioDir)
			if err != nil {
				return err
			}

			items := memory.NewItemRepository()
			if err := items.LoadItems(req.Items); err != nil {
				return fmt.Errorf("loading item master: %w", err)
			}
			bom := memory.NewBOMRepository()
			if err := bomgraph.Build(req.BOMEdges, items, bom); err != nil {
				return fmt.Errorf("building BOM graph: %w", err)
			}

			wanted := make(map[string]bool, len(customers))
			for _, c := range customers {
				wanted[c] = true
			}
			seen := make(map[entities.ItemID]bool)
			var topIDs []entities.ItemID
			for _, line := range req.SalesOrders {
				if len(wanted) > 0 && !wanted[line.Customer] {
					continue
				}
				if !seen[line.ItemID] {
					seen[line.ItemID] = true
					topIDs = append(topIDs, line.ItemID)
				}
			}
			sort.Slice(topIDs, func(i, j int) bool { return topIDs[i] < topIDs[j] })

			explosion := bomexplode.Explode(topIDs, bom)

			fmt.Printf("Hierarchy rows: %d\n", len(explosion.Rows))
			for _, row := range explosion.Rows {
				fmt.Printf("  [%d] top=%d level=%d %d -> %d qty_per=%s cum=%s\n",
					row.OrderSeq, row.TopItemID, row.Level, row.ParentID, row.ChildID, row.QtyPer, row.CumulativeQty)
			}
			fmt.Printf("\nCycles excluded: %d\n", len(explosion.Cycles))
			for _, c := range explosion.Cycles {
				fmt.Printf("  %d -> %d\n", c.ParentID, c.ChildID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioDir, "scenario", "", "scenario directory containing the five input CSVs")
	cmd.Flags().StringSliceVar(&customers, "customer", nil, "restrict top-level items to these customers' sales orders (default: all)")

	return cmd
}
