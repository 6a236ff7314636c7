// Package dto holds the request and result shapes exchanged with the
// planning orchestrator, independent of how inputs were loaded or how
// results will be rendered.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
)

// PlanRequest is the full set of immutable inputs to one planning run:
// the orchestrator executes the full planning pipeline against it and returns
// result tables without mutating it.
type PlanRequest struct {
	Items       []*entities.Item
	BOMEdges    []entities.BOMEdge
	SalesOrders []entities.SalesOrderLine
	Purchases   []entities.OpenPurchase
	Inventory   []entities.InventorySnapshot

	// CustomerFilter selects which sales orders feed this run. An empty
	// filter is a caller error, not a silent no-op: the orchestrator
	// must reject it rather than planning against zero demand.
	CustomerFilter []string

	// AsOfDate is the "today" the action extractor splits
	// expedites from future purchases against. If zero, the
	// orchestrator substitutes the earliest filtered sales-order date.
	AsOfDate time.Time
}

// PlanResult is the complete output of one planning run: every table
// the pipeline produces, plus the run's diagnostics and an identifier
// for correlating it with logs.
type PlanResult struct {
	RunID uuid.UUID

	Hierarchy []entities.HierarchyRow
	Cycles    []entities.Cycle

	Transactions     []entities.TransactionRow
	InventorySummary []entities.InventorySummaryRow

	Expedites []entities.Expedite
	Purchases []entities.PlannedPurchase

	Diagnostics []entities.Diagnostic
}
