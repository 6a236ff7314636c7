package entities

import "time"

// TransactionRow is one flattened (item, day) row of a completed plan,
// as emitted by the reporting assembler.
type TransactionRow struct {
	OrderSeq             int
	TransactionType      string
	ItemID               ItemID
	ItemNo_              string
	Date                 time.Time
	GrossRequirements    Quantity
	ScheduledReceipts    Quantity
	NetRequirements      Quantity
	PlannedOrderReceipts Quantity
	PlannedOrderReleases Quantity
	StartingInventory    Quantity
	EndingInventory      Quantity
}

// InventorySummaryRow is the per-item ending-inventory output table.
type InventorySummaryRow struct {
	ItemNo_         string
	EndingInventory Quantity
}
