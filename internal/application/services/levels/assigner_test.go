package levels

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/memory"
)

func qty(v int64) entities.Quantity { return decimal.NewFromInt(v) }

func TestAssign_LongestPathFromRoot(t *testing.T) {
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(1)},
		{ParentID: 2, ChildID: 3, QtyPer: qty(1)},
		{ParentID: 1, ChildID: 3, QtyPer: qty(1)}, // direct edge, shorter path
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	result := Assign([]entities.ItemID{1}, bom)

	if result.Level[1] != 0 {
		t.Fatalf("root level = %d, want 0", result.Level[1])
	}
	if result.Level[2] != 1 {
		t.Fatalf("level[2] = %d, want 1", result.Level[2])
	}
	// 3 is reachable via 1->3 (level 1) and 1->2->3 (level 2); longest
	// path wins.
	if result.Level[3] != 2 {
		t.Fatalf("level[3] = %d, want 2 (longest path, not shortest)", result.Level[3])
	}
	if result.MaxLevel != 2 {
		t.Fatalf("MaxLevel = %d, want 2", result.MaxLevel)
	}
}

func TestAssign_UnreachableItemsGetNoLevel(t *testing.T) {
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(1)},
		{ParentID: 9, ChildID: 10, QtyPer: qty(1)},
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	result := Assign([]entities.ItemID{1}, bom)
	if _, ok := result.Level[10]; ok {
		t.Fatalf("item 10 is unreachable from root 1 and should have no level")
	}
}
