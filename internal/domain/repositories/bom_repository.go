package repositories

import "github.com/kestrelworks/mrpplan/internal/domain/entities"

// BOMRepository provides access to the already-filtered, deduplicated
// BOM adjacency built by the BOM graph builder.
type BOMRepository interface {
	// Children returns the (childID, qtyPer) pairs for a parent, or nil
	// if the parent has no children.
	Children(parentID entities.ItemID) []ChildEdge
	AllParents() []entities.ItemID
	LoadEdges(edges []entities.BOMEdge) error
}

// ChildEdge is one resolved (child, qty-per) pair under a parent.
type ChildEdge struct {
	ChildID entities.ItemID
	QtyPer  entities.Quantity
}
