package entities

import "time"

// Expedite is a past-due supply signal: a planned release whose release
// day is already behind the as-of date and so cannot be placed through
// the normal planning cycle.
type Expedite struct {
	ItemID       ItemID
	ItemNo_      string
	RequiredDate time.Time
	ExpediteQty  Quantity
}

// PlannedPurchase is a future supply signal for a Purchase-class item:
// an order that should be placed on PlacementDate to receive by
// ExpectedReceiptDate.
type PlannedPurchase struct {
	ItemID              ItemID
	ItemNo_             string
	PlacementDate       time.Time
	ExpectedReceiptDate time.Time
	Qty                 Quantity
}
