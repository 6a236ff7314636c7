// Package aggregate implements the demand & supply aggregator: it
// buckets sales-order lines into per-item per-day gross requirements
// and open purchase orders into per-item per-day scheduled receipts,
// skipping (with a diagnostic) any row for an unknown item or a date
// outside the horizon.
package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// Result holds the two sparse-by-item, dense-by-day series the
// aggregator produces.
type Result struct {
	GrossReqInit map[entities.ItemID][]entities.Quantity
	SchedRecv    map[entities.ItemID][]entities.Quantity
	Diagnostics  []entities.Diagnostic
}

// Aggregate buckets sales orders and open purchases over horizon.
func Aggregate(
	salesOrders []entities.SalesOrderLine,
	purchases []entities.OpenPurchase,
	items repositories.ItemRepository,
	h entities.Horizon,
) Result {
	result := Result{
		GrossReqInit: make(map[entities.ItemID][]entities.Quantity),
		SchedRecv:    make(map[entities.ItemID][]entities.Quantity),
	}

	for _, line := range salesOrders {
		if _, ok := items.GetItem(line.ItemID); !ok {
			id := line.ItemID
			result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
				entities.UnknownItem,
				fmt.Sprintf("sales order line for unknown item %d skipped", line.ItemID),
				&id,
			))
			continue
		}
		if !h.Contains(line.Date) {
			id := line.ItemID
			result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
				entities.OutOfHorizon,
				fmt.Sprintf("sales order line for item %d on %s is outside the planning horizon", line.ItemID, line.Date.Format("2006-01-02")),
				&id,
			))
			continue
		}
		series := ensure(result.GrossReqInit, line.ItemID, h.Days())
		idx := h.Index(line.Date)
		series[idx] = series[idx].Add(line.Qty)
	}

	for _, p := range purchases {
		if _, ok := items.GetItem(p.ItemID); !ok {
			id := p.ItemID
			result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
				entities.UnknownItem,
				fmt.Sprintf("open purchase for unknown item %d skipped", p.ItemID),
				&id,
			))
			continue
		}
		if !h.Contains(p.ExpectedReceiptDate) {
			id := p.ItemID
			result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
				entities.OutOfHorizon,
				fmt.Sprintf("open purchase for item %d on %s is outside the planning horizon", p.ItemID, p.ExpectedReceiptDate.Format("2006-01-02")),
				&id,
			))
			continue
		}
		series := ensure(result.SchedRecv, p.ItemID, h.Days())
		idx := h.Index(p.ExpectedReceiptDate)
		series[idx] = series[idx].Add(p.Qty)
	}

	return result
}

func ensure(m map[entities.ItemID][]entities.Quantity, id entities.ItemID, days int) []entities.Quantity {
	if s, ok := m[id]; ok {
		return s
	}
	s := make([]entities.Quantity, days)
	for i := range s {
		s[i] = decimal.Zero
	}
	m[id] = s
	return s
}
