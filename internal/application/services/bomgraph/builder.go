// Package bomgraph implements the BOM graph builder: it turns raw
// parent/child/qty-per edges into the adjacency a BOM explosion walks,
// dropping edges whose parent is not an Output item, summing duplicate
// (parent, child) pairs, and discarding anything that nets to zero.
package bomgraph

import (
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// Build filters and aggregates raw edges into the adjacency the rest of
// the pipeline consumes, then loads it into repo.
func Build(edges []entities.BOMEdge, items repositories.ItemRepository, repo repositories.BOMRepository) error {
	aggregated := make(map[edgeKey]entities.Quantity)
	order := make([]edgeKey, 0, len(edges))

	for _, e := range edges {
		parent, ok := items.GetItem(e.ParentID)
		if !ok || parent.Policy != entities.Output {
			continue
		}
		key := edgeKey{parent: e.ParentID, child: e.ChildID}
		if _, seen := aggregated[key]; !seen {
			order = append(order, key)
			aggregated[key] = e.QtyPer
		} else {
			aggregated[key] = aggregated[key].Add(e.QtyPer)
		}
	}

	filtered := make([]entities.BOMEdge, 0, len(order))
	for _, key := range order {
		qty := aggregated[key]
		if entities.IsEffectivelyZero(qty) {
			continue
		}
		filtered = append(filtered, entities.BOMEdge{ParentID: key.parent, ChildID: key.child, QtyPer: qty})
	}

	return repo.LoadEdges(filtered)
}

type edgeKey struct {
	parent entities.ItemID
	child  entities.ItemID
}
