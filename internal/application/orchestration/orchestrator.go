// Package orchestration wires the planning services into a single run:
// it owns no business logic itself, only the sequencing. Build the BOM
// structure, prepare the horizon and bucketed demand/supply, assign
// levels, drive the per-item level sweep, then materialize outputs.
package orchestration

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelworks/mrpplan/internal/application/dto"
	"github.com/kestrelworks/mrpplan/internal/application/services/actions"
	"github.com/kestrelworks/mrpplan/internal/application/services/aggregate"
	"github.com/kestrelworks/mrpplan/internal/application/services/bomexplode"
	"github.com/kestrelworks/mrpplan/internal/application/services/bomgraph"
	"github.com/kestrelworks/mrpplan/internal/application/services/horizon"
	"github.com/kestrelworks/mrpplan/internal/application/services/levels"
	"github.com/kestrelworks/mrpplan/internal/application/services/propagate"
	"github.com/kestrelworks/mrpplan/internal/application/services/reporting"
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// PlanningOrchestrator coordinates the nine planning components over a
// fixed set of repositories.
type PlanningOrchestrator struct {
	items     repositories.ItemRepository
	bom       repositories.BOMRepository
	inventory repositories.InventoryRepository
	demand    repositories.DemandRepository
	purchases repositories.PurchaseRepository
}

// NewPlanningOrchestrator builds an orchestrator over the given
// repositories. The repositories are expected to already be loaded
// (e.g. by a CSV loader) before Run is called.
func NewPlanningOrchestrator(
	items repositories.ItemRepository,
	bom repositories.BOMRepository,
	inventory repositories.InventoryRepository,
	demand repositories.DemandRepository,
	purchases repositories.PurchaseRepository,
) *PlanningOrchestrator {
	return &PlanningOrchestrator{
		items:     items,
		bom:       bom,
		inventory: inventory,
		demand:    demand,
		purchases: purchases,
	}
}

// Run executes the full planning pipeline for one PlanRequest and returns
// every output table, or a fatal error if the request's input shape is
// invalid or an arithmetic invariant is violated mid-run.
func (po *PlanningOrchestrator) Run(req dto.PlanRequest) (*dto.PlanResult, error) {
	if len(req.CustomerFilter) == 0 {
		return nil, &entities.InputShapeError{Reason: "customer filter is empty: selecting zero customers is a caller error, not a no-op"}
	}
	if len(req.Items) == 0 {
		return nil, &entities.InputShapeError{Reason: "item master is empty"}
	}

	if err := po.items.LoadItems(req.Items); err != nil {
		return nil, fmt.Errorf("loading item master: %w", err)
	}
	if err := po.inventory.LoadSnapshots(req.Inventory); err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	if err := po.purchases.LoadOpenPurchases(req.Purchases); err != nil {
		return nil, fmt.Errorf("loading open purchases: %w", err)
	}

	filteredOrders := filterByCustomer(req.SalesOrders, req.CustomerFilter)
	if err := po.demand.LoadSalesOrders(filteredOrders); err != nil {
		return nil, fmt.Errorf("loading sales orders: %w", err)
	}

	// Build the filtered, deduplicated BOM adjacency.
	if err := bomgraph.Build(req.BOMEdges, po.items, po.bom); err != nil {
		return nil, fmt.Errorf("building BOM graph: %w", err)
	}

	// Top-level demanded items double as explosion and level roots;
	// demand lines for unknown items surface as UnknownItem diagnostics
	// during aggregation and contribute no root.
	topIDs := knownItemIDs(distinctItemIDs(filteredOrders), po.items)

	// Explode the hierarchy from every demanded top-level item.
	explosion := bomexplode.Explode(topIDs, po.bom)

	// Derive the single planning horizon from demand/supply dates
	// and the longest lead time in the item master.
	h, err := horizon.Plan(req.Items, demandDates(filteredOrders), purchaseDates(req.Purchases))
	if err != nil {
		return nil, fmt.Errorf("computing planning horizon: %w", err)
	}

	// Bucket demand and supply into per-item, per-day series.
	agg := aggregate.Aggregate(filteredOrders, req.Purchases, po.items, h)

	// Assign BOM depth to every item reachable from a root.
	levelResult := levels.Assign(topIDs, po.bom)

	// Sweep levels shallowest-first, planning each item and
	// pushing its planned releases down onto its children's gross
	// requirements before they are planned.
	prop, err := propagate.Propagate(levelResult, agg.GrossReqInit, agg.SchedRecv, po.items, po.inventory, po.bom, h)
	if err != nil {
		return nil, fmt.Errorf("propagating requirements: %w", err)
	}

	asOf := req.AsOfDate
	if asOf.IsZero() {
		asOf = earliestDate(demandDates(filteredOrders))
	}

	// Derive expedites and future purchases from the completed plans.
	actionResult := actions.Extract(prop, po.items, h, asOf)

	// Flatten the plans into dated transaction rows and an
	// ending-inventory summary.
	report := reporting.Assemble(prop, po.items, po.inventory, h)

	diagnostics := make([]entities.Diagnostic, 0, len(agg.Diagnostics)+len(prop.Diagnostics)+len(explosion.Cycles))
	diagnostics = append(diagnostics, agg.Diagnostics...)
	diagnostics = append(diagnostics, prop.Diagnostics...)
	for _, c := range explosion.Cycles {
		diagnostics = append(diagnostics, entities.NewDiagnostic(
			entities.CycleDetected,
			fmt.Sprintf("BOM cycle excluded: %d -> %d re-enters an ancestor", c.ParentID, c.ChildID),
			&c.ChildID,
		))
	}

	return &dto.PlanResult{
		RunID:            uuid.New(),
		Hierarchy:        explosion.Rows,
		Cycles:           explosion.Cycles,
		Transactions:     report.Transactions,
		InventorySummary: report.InventorySummary,
		Expedites:        actionResult.Expedites,
		Purchases:        actionResult.Purchases,
		Diagnostics:      diagnostics,
	}, nil
}
