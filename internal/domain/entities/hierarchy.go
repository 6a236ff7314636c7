package entities

// HierarchyRow is one emitted row of the BOM explosion: a single
// parent/child occurrence under a specific top-level demanded item,
// with its depth and cumulative quantity from the top.
type HierarchyRow struct {
	OrderSeq      int
	TopItemID     ItemID
	ParentID      ItemID
	ChildID       ItemID
	Level         int
	QtyPer        Quantity
	CumulativeQty Quantity
}

// Cycle records a BOM edge excluded from explosion because it would
// re-enter an ancestor already on the current traversal path.
type Cycle struct {
	ParentID ItemID
	ChildID  ItemID
}
