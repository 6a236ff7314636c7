// Package levels implements the level assigner: it computes, for
// every item reachable from any demanded top-level item, its BOM depth
// (longest path from any root), which the requirements propagator
// uses to sweep items in dependency order.
package levels

import (
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// Result is the level assignment: a level per reachable item and the
// deepest level seen.
type Result struct {
	Level    map[entities.ItemID]int
	MaxLevel int
}

// Assign computes levels by relaxing level[child] = max(level[child],
// level[parent]+1) over every BOM edge until a full pass makes no
// change. Items unreachable from any root receive no entry.
func Assign(roots []entities.ItemID, bom repositories.BOMRepository) Result {
	level := make(map[entities.ItemID]int, len(roots))
	for _, r := range roots {
		level[r] = 0
	}

	parents := bom.AllParents()

	// Bound the relaxation by the number of distinct items seen so far
	// (deepest possible longest-path length on a DAG); this also keeps
	// the loop from spinning forever if the adjacency still contains an
	// edge that takes part in a cycle the exploder flagged but did not
	// remove.
	maxPasses := len(parents) + len(roots) + 1

	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, p := range parents {
			parentLevel, ok := level[p]
			if !ok {
				continue
			}
			for _, edge := range bom.Children(p) {
				candidate := parentLevel + 1
				if current, exists := level[edge.ChildID]; !exists || candidate > current {
					level[edge.ChildID] = candidate
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}

	return Result{Level: level, MaxLevel: maxLevel}
}
