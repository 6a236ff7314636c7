// Package bomexplode implements the BOM exploder: a depth-first
// walk from each top-level demanded item that emits one hierarchy row
// per visited edge and detects, without aborting, cycles formed by
// an edge re-entering an ancestor already on the current path.
package bomexplode

import (
	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// Result is the output of Explode: the flattened hierarchy plus any
// cycles found along the way.
type Result struct {
	Rows   []entities.HierarchyRow
	Cycles []entities.Cycle
}

// Explode walks the BOM from each of topIDs (deduplicated, first
// occurrence preserved) and returns the indented hierarchy.
func Explode(topIDs []entities.ItemID, bom repositories.BOMRepository) Result {
	e := &explorer{
		bom:    bom,
		seq:    0,
		result: Result{},
	}

	seen := make(map[entities.ItemID]bool, len(topIDs))
	for _, top := range topIDs {
		if seen[top] {
			continue
		}
		seen[top] = true
		e.explodeTop(top)
	}

	return e.result
}

type explorer struct {
	bom    repositories.BOMRepository
	seq    int
	result Result
}

func (e *explorer) explodeTop(top entities.ItemID) {
	path := map[entities.ItemID]bool{top: true}
	e.visit(top, top, decimal.New(1, 0), 0, path)
}

// visit descends from parent (whose cumulative quantity from top is
// parentCumQty, at the given level) into each of its children.
func (e *explorer) visit(top, parent entities.ItemID, parentCumQty entities.Quantity, level int, path map[entities.ItemID]bool) {
	for _, edge := range e.bom.Children(parent) {
		child := edge.ChildID

		if path[child] {
			e.result.Cycles = append(e.result.Cycles, entities.Cycle{ParentID: parent, ChildID: child})
			continue
		}

		e.seq++
		cumQty := parentCumQty.Mul(edge.QtyPer)
		e.result.Rows = append(e.result.Rows, entities.HierarchyRow{
			OrderSeq:      e.seq,
			TopItemID:     top,
			ParentID:      parent,
			ChildID:       child,
			Level:         level,
			QtyPer:        edge.QtyPer,
			CumulativeQty: cumQty,
		})

		if grandchildren := e.bom.Children(child); len(grandchildren) > 0 {
			path[child] = true
			e.visit(top, child, cumQty, level+1, path)
			delete(path, child)
		}
	}
}
