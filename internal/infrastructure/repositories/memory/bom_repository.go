package memory

import (
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// BOMRepository is an in-memory adjacency list, already filtered to
// Output parents and deduplicated by the BOM graph builder before
// it reaches here.
type BOMRepository struct {
	children map[entities.ItemID][]repositories.ChildEdge
	parents  []entities.ItemID
}

// NewBOMRepository creates an empty in-memory BOM repository.
func NewBOMRepository() *BOMRepository {
	return &BOMRepository{children: make(map[entities.ItemID][]repositories.ChildEdge)}
}

var _ repositories.BOMRepository = (*BOMRepository)(nil)

// LoadEdges replaces the adjacency with edges. Edges are assumed to
// already be filtered/deduplicated; LoadEdges itself just indexes them.
func (r *BOMRepository) LoadEdges(edges []entities.BOMEdge) error {
	r.children = make(map[entities.ItemID][]repositories.ChildEdge)
	r.parents = r.parents[:0]
	for _, e := range edges {
		if _, exists := r.children[e.ParentID]; !exists {
			r.parents = append(r.parents, e.ParentID)
		}
		r.children[e.ParentID] = append(r.children[e.ParentID], repositories.ChildEdge{
			ChildID: e.ChildID,
			QtyPer:  e.QtyPer,
		})
	}
	return nil
}

// Children returns the child edges for a parent, or nil if it has none.
func (r *BOMRepository) Children(parentID entities.ItemID) []repositories.ChildEdge {
	return r.children[parentID]
}

// AllParents returns every parent ItemID with at least one child, in
// load order.
func (r *BOMRepository) AllParents() []entities.ItemID {
	return r.parents
}
