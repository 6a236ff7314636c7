// Package reporting implements the reporting assembler: it
// flattens every item's completed plan into dated transaction rows and
// a per-item ending-inventory summary.
package reporting

import (
	"sort"

	"github.com/kestrelworks/mrpplan/internal/application/services/propagate"
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// transactionType is the constant "Transaction Type" column value the
// source system emits for every MRP-generated row.
const transactionType = "MRP"

// Result holds the two output tables the assembler produces.
type Result struct {
	Transactions     []entities.TransactionRow
	InventorySummary []entities.InventorySummaryRow
}

// Assemble flattens prop.Plans over h into TransactionRows sorted by
// (date ASC, item_id ASC) with a sequential OrderSeq, plus one ending-
// inventory summary row per item.
func Assemble(
	prop propagate.Result,
	items repositories.ItemRepository,
	inventory repositories.InventoryRepository,
	h entities.Horizon,
) Result {
	days := h.Days()
	var result Result
	result.InventorySummary = make([]entities.InventorySummaryRow, 0, len(prop.Plans))

	itemIDs := make([]entities.ItemID, 0, len(prop.Plans))
	for id := range prop.Plans {
		itemIDs = append(itemIDs, id)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	for d := 0; d < days; d++ {
		date := h.DateAt(d)
		for _, itemID := range itemIDs {
			plan := prop.Plans[itemID]
			item, ok := items.GetItem(itemID)
			itemNo := ""
			if ok {
				itemNo = item.No_
			}

			starting := inventory.OnHand(itemID)
			if d > 0 {
				starting = plan.ProjectedOnHand[d-1]
			}

			result.Transactions = append(result.Transactions, entities.TransactionRow{
				TransactionType:      transactionType,
				ItemID:               itemID,
				ItemNo_:              itemNo,
				Date:                 date,
				GrossRequirements:    plan.GrossRequirements[d],
				ScheduledReceipts:    plan.ScheduledReceipts[d],
				NetRequirements:      plan.NetRequirements[d],
				PlannedOrderReceipts: plan.PlannedReceipts[d],
				PlannedOrderReleases: plan.PlannedReleases[d],
				StartingInventory:    starting,
				EndingInventory:      plan.ProjectedOnHand[d],
			})
		}
	}

	for seq := range result.Transactions {
		result.Transactions[seq].OrderSeq = seq + 1
	}

	for _, itemID := range itemIDs {
		item, ok := items.GetItem(itemID)
		itemNo := ""
		if ok {
			itemNo = item.No_
		}
		result.InventorySummary = append(result.InventorySummary, entities.InventorySummaryRow{
			ItemNo_:         itemNo,
			EndingInventory: prop.Plans[itemID].EndingInventory(),
		})
	}

	return result
}
