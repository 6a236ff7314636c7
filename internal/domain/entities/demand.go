package entities

import "time"

// SalesOrderLine is one line of customer demand for an item on a date.
type SalesOrderLine struct {
	ItemID      ItemID
	No_         string
	Customer    string
	DocumentNo_ string
	Date        time.Time
	Qty         Quantity
}

// OpenPurchase is one expected receipt from an already-placed purchase
// order.
type OpenPurchase struct {
	ItemID              ItemID
	ExpectedReceiptDate time.Time
	Qty                 Quantity
	DocumentNo_         string
}
