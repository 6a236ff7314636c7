package entities

// BOMEdge is one parent/child relationship in the bill of materials.
// Invariant: ParentID's Item.Policy must be Output; Purchase items
// never appear as a parent (enforced by the BOM graph builder, not this
// struct).
type BOMEdge struct {
	ParentID ItemID
	ChildID  ItemID
	QtyPer   Quantity
}
