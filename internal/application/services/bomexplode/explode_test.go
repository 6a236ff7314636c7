package bomexplode

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/memory"
)

func qty(v int64) entities.Quantity { return decimal.NewFromInt(v) }

func TestExplode_AcyclicMultiLevel(t *testing.T) {
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(2)},
		{ParentID: 2, ChildID: 3, QtyPer: qty(3)},
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	result := Explode([]entities.ItemID{1}, bom)

	if len(result.Cycles) != 0 {
		t.Fatalf("expected no cycles, got %v", result.Cycles)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 hierarchy rows, got %d", len(result.Rows))
	}

	row0 := result.Rows[0]
	if row0.ParentID != 1 || row0.ChildID != 2 || row0.Level != 0 || !row0.CumulativeQty.Equal(qty(2)) {
		t.Fatalf("unexpected row 0: %+v", row0)
	}
	row1 := result.Rows[1]
	if row1.ParentID != 2 || row1.ChildID != 3 || row1.Level != 1 || !row1.CumulativeQty.Equal(qty(6)) {
		t.Fatalf("unexpected row 1: %+v", row1)
	}
	if row0.OrderSeq != 1 || row1.OrderSeq != 2 {
		t.Fatalf("expected sequential order_seq, got %d then %d", row0.OrderSeq, row1.OrderSeq)
	}
}

// Cycle tolerance. BOM 1->2, 2->1. Exploding from top=1 emits exactly
// the 1->2 row at level 0; the cycle set contains (2,1); explosion
// completes without aborting.
func TestExplode_CycleTolerance(t *testing.T) {
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(1)},
		{ParentID: 2, ChildID: 1, QtyPer: qty(1)},
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	result := Explode([]entities.ItemID{1}, bom)

	if len(result.Rows) != 1 {
		t.Fatalf("expected exactly one emitted row, got %d: %+v", len(result.Rows), result.Rows)
	}
	row := result.Rows[0]
	if row.ParentID != 1 || row.ChildID != 2 || row.Level != 0 {
		t.Fatalf("unexpected row: %+v", row)
	}

	if len(result.Cycles) != 1 || result.Cycles[0].ParentID != 2 || result.Cycles[0].ChildID != 1 {
		t.Fatalf("expected cycle (2,1), got %v", result.Cycles)
	}
}

func TestExplode_RevisitWithoutCycleEmitsBothOccurrences(t *testing.T) {
	// Item 4 appears under both 2 and 3: not a cycle, both occurrences emitted.
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(1)},
		{ParentID: 1, ChildID: 3, QtyPer: qty(1)},
		{ParentID: 2, ChildID: 4, QtyPer: qty(1)},
		{ParentID: 3, ChildID: 4, QtyPer: qty(1)},
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	result := Explode([]entities.ItemID{1}, bom)
	if len(result.Cycles) != 0 {
		t.Fatalf("expected no cycles, got %v", result.Cycles)
	}

	childCount := 0
	for _, row := range result.Rows {
		if row.ChildID == 4 {
			childCount++
		}
	}
	if childCount != 2 {
		t.Fatalf("expected child 4 to appear twice (once per parent path), got %d", childCount)
	}
}

func TestExplode_DeduplicatesTopIDsPreservingFirstOccurrence(t *testing.T) {
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(1)},
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	result := Explode([]entities.ItemID{1, 1, 1}, bom)
	if len(result.Rows) != 1 {
		t.Fatalf("expected a duplicated top id to be exploded once, got %d rows", len(result.Rows))
	}
}
